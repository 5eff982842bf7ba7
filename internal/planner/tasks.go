package planner

import (
	"context"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

// TaskInput describes a hand-added task. Empty Priority means medium and an
// empty Date means today.
type TaskInput struct {
	Title       string
	Description string
	Domain      model.DomainID
	Priority    model.Priority
	Date        string
	TimeSlot    string
}

func (p *Planner) AddTask(ctx context.Context, in TaskInput) (model.Task, error) {
	t := model.Task{
		ID:          p.newID(),
		Title:       in.Title,
		Description: in.Description,
		Domain:      in.Domain,
		Priority:    in.Priority,
		Date:        in.Date,
		TimeSlot:    in.TimeSlot,
		CreatedAt:   p.now().UTC(),
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Date == "" {
		t.Date = calendar.Today(p.now()).Key()
	}
	var added model.Task
	err := p.mutate(ctx, Event{Kind: EventTaskAdded, TaskID: t.ID}, func(_ *State, tasks *store.Store) error {
		if err := tasks.Add(t); err != nil {
			return err
		}
		added, _ = tasks.Get(t.ID)
		return nil
	})
	return added, err
}

func (p *Planner) ToggleDone(ctx context.Context, id string) (model.Task, error) {
	var out model.Task
	err := p.mutate(ctx, Event{Kind: EventTaskToggled, TaskID: id}, func(_ *State, tasks *store.Store) (err error) {
		out, err = tasks.ToggleDone(id)
		return err
	})
	return out, err
}

func (p *Planner) MoveTask(ctx context.Context, id, dateKey string) (model.Task, error) {
	var out model.Task
	err := p.mutate(ctx, Event{Kind: EventTaskMoved, TaskID: id}, func(_ *State, tasks *store.Store) (err error) {
		out, err = tasks.Move(id, dateKey)
		return err
	})
	return out, err
}

// ShiftTask moves a task by days relative to its current date.
func (p *Planner) ShiftTask(ctx context.Context, id string, days int) (model.Task, error) {
	var out model.Task
	err := p.mutate(ctx, Event{Kind: EventTaskMoved, TaskID: id}, func(_ *State, tasks *store.Store) error {
		t, err := tasks.Get(id)
		if err != nil {
			return err
		}
		day, err := t.Day()
		if err != nil {
			return err
		}
		out, err = tasks.Move(id, day.AddDays(days).Key())
		return err
	})
	return out, err
}

func (p *Planner) EditTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	var out model.Task
	err := p.mutate(ctx, Event{Kind: EventTaskEdited, TaskID: id}, func(_ *State, tasks *store.Store) (err error) {
		out, err = tasks.Edit(id, patch)
		return err
	})
	return out, err
}

func (p *Planner) DeleteTask(ctx context.Context, id string) error {
	return p.mutate(ctx, Event{Kind: EventTaskDeleted, TaskID: id}, func(_ *State, tasks *store.Store) error {
		return tasks.Delete(id)
	})
}

func (p *Planner) Task(id string) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Get(id)
}

// FindTask resolves an exact id or a unique id prefix.
func (p *Planner) FindTask(ref string) (model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Find(ref)
}

func (p *Planner) TasksOn(dateKey string) []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.ByDate(dateKey)
}

func (p *Planner) TasksIn(domain model.DomainID) []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.ByDomain(domain)
}

func (p *Planner) Tasks() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.All()
}

// Timeline returns every task in chronological order.
func (p *Planner) Timeline() []model.Task {
	return store.Chronological(p.Tasks())
}

func (p *Planner) Progress() []store.DomainProgress {
	return store.Progress(p.Tasks())
}

func (p *Planner) Summary(now time.Time) store.Summary {
	return store.Summarize(p.Tasks(), calendar.Today(now).Key())
}
