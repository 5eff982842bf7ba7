package planner

import "slices"

type EventKind string

const (
	EventScheduleRegenerated EventKind = "schedule_regenerated"
	EventWeekChanged         EventKind = "week_changed"
	EventTaskAdded           EventKind = "task_added"
	EventTaskToggled         EventKind = "task_toggled"
	EventTaskMoved           EventKind = "task_moved"
	EventTaskEdited          EventKind = "task_edited"
	EventTaskDeleted         EventKind = "task_deleted"
	EventNoteChanged         EventKind = "note_changed"
)

type Event struct {
	Kind   EventKind
	TaskID string
	NoteID string
}

type observer struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every committed change and returns a function
// that removes it.
func (p *Planner) Subscribe(fn func(Event)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextObs++
	id := p.nextObs
	p.observers = append(p.observers, observer{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.observers = slices.DeleteFunc(p.observers, func(o observer) bool { return o.id == id })
	}
}
