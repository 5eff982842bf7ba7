package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

type View string

const (
	ViewWeek     View = "Week"
	ViewTimeline View = "Timeline"
	ViewDomains  View = "Domains"
	ViewNotes    View = "Notes"
)

var viewOrder = []View{ViewWeek, ViewTimeline, ViewDomains, ViewNotes}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Week     string
	Timeline string
	Domains  string
	Notes    string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	DayCursor      int
	SelectedTaskID string
	TimelineCursor int
	DomainCursor   int
	NoteCursor     int
	Palette        CommandPaletteState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Owner          string

	planner      *planner.Planner
	events       <-chan planner.Event
	ctx          context.Context
	now          func() time.Time
	commandInput textinput.Model
	helpModel    help.Model
	width        int
	height       int
}

type Option func(*Model)

// WithEvents makes the model refresh whenever the planner reports a change
// made outside the TUI.
func WithEvents(ch <-chan planner.Event) Option {
	return func(m *Model) { m.events = ch }
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithOwner(name string) Option {
	return func(m *Model) { m.Owner = name }
}

func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type PlannerChangedMsg struct {
	Event planner.Event
}

func NewModel(p *planner.Planner, opts ...Option) Model {
	m := Model{
		CurrentView: ViewWeek,
		planner:     p,
		ctx:         context.Background(),
		now:         time.Now,
		Keys: GlobalKeyMap{
			Week:     "1",
			Timeline: "2",
			Domains:  "3",
			Notes:    "4",
			Help:     "?",
			Quit:     "q",
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	m.DayCursor = m.todayIndex()
	m.syncSelection()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m Model) today() calendar.Day {
	return calendar.Today(m.now())
}

// todayIndex is today's column in the current week, or 0 when today is
// outside it.
func (m Model) todayIndex() int {
	today := m.today()
	for i, d := range m.planner.CurrentWeekDates() {
		if d.Equal(today) {
			return i
		}
	}
	return 0
}

func (m Model) selectedDay() calendar.Day {
	dates := m.planner.CurrentWeekDates()
	return dates[clamp(m.DayCursor, 0, len(dates)-1)]
}

// dayTasks returns the selected day's tasks in display order.
func (m Model) dayTasks() []model.Task {
	return store.Chronological(m.planner.TasksOn(m.selectedDay().Key()))
}

func (m Model) selectedTask() (model.Task, bool) {
	if m.SelectedTaskID == "" {
		return model.Task{}, false
	}
	t, err := m.planner.Task(m.SelectedTaskID)
	if err != nil {
		return model.Task{}, false
	}
	return t, true
}

// syncSelection keeps SelectedTaskID pointing at a task of the selected
// day, falling back to the first one.
func (m *Model) syncSelection() {
	tasks := m.dayTasks()
	for _, t := range tasks {
		if t.ID == m.SelectedTaskID {
			return
		}
	}
	m.SelectedTaskID = ""
	if len(tasks) > 0 {
		m.SelectedTaskID = tasks[0].ID
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
