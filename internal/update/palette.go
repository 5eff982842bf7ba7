package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/commands"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/planner"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.commandInput.CursorEnd()
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, cmd
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

// resolve maps a palette target to a task: "." is the selected task,
// anything else an id prefix.
func (m Model) resolve(target string) (model.Task, error) {
	if target == "." {
		if t, ok := m.selectedTask(); ok {
			return t, nil
		}
		return model.Task{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
	}
	return m.planner.FindTask(target)
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m = m.closePalette()
		m.fail(err)
		return m
	}

	var focus *model.Task
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			day, err := calendar.ResolveDay(a.Date, m.today())
			if err != nil {
				return commands.Result{}, err
			}
			t, err := m.planner.AddTask(m.ctx, planner.TaskInput{
				Title:    a.Title,
				Domain:   a.Domain,
				Priority: a.Priority,
				Date:     day.Key(),
				TimeSlot: a.Slot,
			})
			if err != nil {
				return commands.Result{}, err
			}
			focus = &t
			return commands.Result{Message: fmt.Sprintf("added %s on %s", t.Title, t.Date)}, nil
		},
		Move: func(a commands.MoveArgs) (commands.Result, error) {
			t, err := m.resolve(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if a.Relative() {
				t, err = m.planner.ShiftTask(m.ctx, t.ID, a.Shift)
			} else {
				var day calendar.Day
				if day, err = calendar.ResolveDay(a.Date, m.today()); err == nil {
					t, err = m.planner.MoveTask(m.ctx, t.ID, day.Key())
				}
			}
			if err != nil {
				return commands.Result{}, err
			}
			focus = &t
			return commands.Result{Message: fmt.Sprintf("moved %s to %s", t.Title, t.Date)}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := m.resolve(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if t, err = m.planner.ToggleDone(m.ctx, t.ID); err != nil {
				return commands.Result{}, err
			}
			if t.Done {
				return commands.Result{Message: "done: " + t.Title}, nil
			}
			return commands.Result{Message: "reopened: " + t.Title}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := m.resolve(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.planner.DeleteTask(m.ctx, t.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "deleted: " + t.Title}, nil
		},
		Week: func(a commands.WeekArgs) (commands.Result, error) {
			var (
				week int
				err  error
			)
			if a.Relative {
				week, err = m.planner.ShiftWeek(m.ctx, a.Delta)
			} else {
				week, err = m.planner.SetWeek(m.ctx, a.Week)
			}
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewWeek
			return commands.Result{Message: fmt.Sprintf("week %d · %s", week+1, m.planner.WeekRangeLabel(week))}, nil
		},
		Goto: func(a commands.TargetArgs) (commands.Result, error) {
			t, err := m.resolve(a.Target)
			if err != nil {
				return commands.Result{}, err
			}
			if _, err := m.planner.FocusTask(m.ctx, t.ID); err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewWeek
			focus = &t
			return commands.Result{Message: fmt.Sprintf("%s · %s", t.Date, t.Title)}, nil
		},
	})

	m = m.closePalette()
	if err != nil {
		m.fail(err)
		return m
	}
	if focus != nil && m.CurrentView == ViewWeek {
		m = m.follow(*focus)
	} else {
		m.syncSelection()
	}
	m.LastError = nil
	m.Status = StatusBar{Text: res.Message}
	return m
}
