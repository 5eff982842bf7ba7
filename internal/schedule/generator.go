package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
)

const (
	Weeks       = 6
	HorizonDays = Weeks * calendar.DaysPerWeek
)

type Option func(*Generator)

// WithIDFunc replaces the id source, mostly so tests get stable ids.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(g *Generator) {
		if fn != nil {
			g.now = fn
		}
	}
}

type Generator struct {
	newID func() string
	now   func() time.Time
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate expands HorizonDays days from start. Each day contributes its
// template, then its night routine dated the following day, so the first
// day has no morning tasks and the last night spills one day past the
// horizon.
func (g *Generator) Generate(start calendar.Day) []model.Task {
	created := g.now()
	night := NightRoutine()
	tasks := make([]model.Task, 0, HorizonDays*(8+len(night)))
	for i := 0; i < HorizonDays; i++ {
		day := start.AddDays(i)
		for _, e := range Template(day.Weekday()) {
			tasks = append(tasks, g.task(e, day, created))
		}
		next := day.AddDays(1)
		for _, e := range night {
			tasks = append(tasks, g.task(e, next, created))
		}
	}
	return tasks
}

// GenerateFrom parses startKey before producing anything.
func (g *Generator) GenerateFrom(startKey string) ([]model.Task, error) {
	start, err := calendar.ParseDateKey(startKey)
	if err != nil {
		return nil, err
	}
	return g.Generate(start), nil
}

func (g *Generator) task(e Entry, day calendar.Day, created time.Time) model.Task {
	return model.Task{
		ID:        g.newID(),
		Title:     e.Title,
		Domain:    e.Domain,
		Priority:  model.PriorityMedium,
		Date:      day.Key(),
		TimeSlot:  e.Slot,
		CreatedAt: created,
	}
}
