package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
)

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func (m Model) handleWeekKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m = m.moveDay(-1)
	case "l", "right":
		m = m.moveDay(1)
	case "[":
		m = m.shiftWeek(-1)
	case "]":
		m = m.shiftWeek(1)
	case "j", "down":
		m.moveTaskCursor(1)
	case "k", "up":
		m.moveTaskCursor(-1)
	case " ", "space":
		m = m.toggleSelected()
	case "x":
		m = m.deleteSelected()
	case "<":
		m = m.shiftSelected(-1)
	case ">":
		m = m.shiftSelected(1)
	case "g":
		m = m.jumpToToday()
	}
	return m
}

// moveDay steps the day cursor and crosses into the neighbouring week at
// either edge.
func (m Model) moveDay(delta int) Model {
	next := m.DayCursor + delta
	switch {
	case next < 0:
		if m.planner.CurrentWeek() == 0 {
			return m
		}
		m = m.shiftWeek(-1)
		next = calendar.DaysPerWeek - 1
	case next >= calendar.DaysPerWeek:
		before := m.planner.CurrentWeek()
		m = m.shiftWeek(1)
		if m.planner.CurrentWeek() == before {
			return m
		}
		next = 0
	}
	m.DayCursor = next
	m.syncSelection()
	return m
}

func (m Model) shiftWeek(delta int) Model {
	week, err := m.planner.ShiftWeek(m.ctx, delta)
	if err != nil {
		m.fail(err)
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("week %d · %s", week+1, m.planner.WeekRangeLabel(week))}
	m.syncSelection()
	return m
}

func (m *Model) moveTaskCursor(delta int) {
	tasks := m.dayTasks()
	if len(tasks) == 0 {
		m.SelectedTaskID = ""
		return
	}
	idx := 0
	for i, t := range tasks {
		if t.ID == m.SelectedTaskID {
			idx = i
			break
		}
	}
	m.SelectedTaskID = tasks[clamp(idx+delta, 0, len(tasks)-1)].ID
}

func (m Model) toggleSelected() Model {
	if m.SelectedTaskID == "" {
		return m
	}
	t, err := m.planner.ToggleDone(m.ctx, m.SelectedTaskID)
	if err != nil {
		m.fail(err)
		return m
	}
	state := "reopened"
	if t.Done {
		state = "done"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", state, t.Title)}
	return m
}

func (m Model) deleteSelected() Model {
	t, ok := m.selectedTask()
	if !ok {
		return m
	}
	// Pick the neighbour before the task disappears.
	m.moveTaskCursor(1)
	if m.SelectedTaskID == t.ID {
		m.moveTaskCursor(-1)
	}
	if err := m.planner.DeleteTask(m.ctx, t.ID); err != nil {
		m.SelectedTaskID = t.ID
		m.fail(err)
		return m
	}
	m.syncSelection()
	m.Status = StatusBar{Text: "deleted: " + t.Title}
	return m
}

func (m Model) shiftSelected(days int) Model {
	if m.SelectedTaskID == "" {
		return m
	}
	t, err := m.planner.ShiftTask(m.ctx, m.SelectedTaskID, days)
	if err != nil {
		m.fail(err)
		return m
	}
	m = m.follow(t)
	m.Status = StatusBar{Text: fmt.Sprintf("moved %s to %s", t.Title, t.Date)}
	return m
}

// follow points the week and day cursors at t's date.
func (m Model) follow(t model.Task) Model {
	week, err := m.planner.WeekOf(t.Date)
	if err != nil {
		m.fail(err)
		return m
	}
	if week != m.planner.CurrentWeek() {
		if _, err := m.planner.SetWeek(m.ctx, week); err != nil {
			m.fail(err)
			return m
		}
	}
	for i, d := range m.planner.CurrentWeekDates() {
		if d.Key() == t.Date {
			m.DayCursor = i
		}
	}
	m.SelectedTaskID = t.ID
	m.syncSelection()
	return m
}

func (m Model) jumpToToday() Model {
	week, err := m.planner.WeekOf(m.today().Key())
	if err != nil {
		m.fail(err)
		return m
	}
	if _, err := m.planner.SetWeek(m.ctx, week); err != nil {
		m.fail(err)
		return m
	}
	m.DayCursor = m.todayIndex()
	m.syncSelection()
	m.Status = StatusBar{Text: "today: " + m.today().Label()}
	return m
}

func (m Model) handleTimelineKey(msg tea.KeyMsg) Model {
	timeline := m.planner.Timeline()
	switch msg.String() {
	case "j", "down":
		m.TimelineCursor = clamp(m.TimelineCursor+1, 0, len(timeline)-1)
	case "k", "up":
		m.TimelineCursor = clamp(m.TimelineCursor-1, 0, len(timeline)-1)
	case "enter":
		if len(timeline) == 0 {
			return m
		}
		t := timeline[clamp(m.TimelineCursor, 0, len(timeline)-1)]
		if _, err := m.planner.FocusTask(m.ctx, t.ID); err != nil {
			m.fail(err)
			return m
		}
		m.CurrentView = ViewWeek
		m = m.follow(t)
	}
	return m
}

func (m Model) handleDomainsKey(msg tea.KeyMsg) Model {
	n := len(model.Domains())
	switch msg.String() {
	case "j", "down":
		m.DomainCursor = clamp(m.DomainCursor+1, 0, n-1)
	case "k", "up":
		m.DomainCursor = clamp(m.DomainCursor-1, 0, n-1)
	}
	return m
}

func (m Model) handleNotesKey(msg tea.KeyMsg) Model {
	n := len(m.planner.Notes())
	switch msg.String() {
	case "j", "down":
		m.NoteCursor = clamp(m.NoteCursor+1, 0, n-1)
	case "k", "up":
		m.NoteCursor = clamp(m.NoteCursor-1, 0, n-1)
	}
	return m
}
