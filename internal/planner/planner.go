// Package planner owns the planner document: schedule identity, the week
// being viewed, tasks and notes.
//
// Every mutation is write-through. It runs against a copy of the state, the
// copy is saved, and only a successful save replaces the live state, so a
// failed save leaves memory and disk as they were. Observers are notified
// after the new state is live and the lock has been released; they may call
// back into the Planner.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/logging"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

// Snapshotter persists the encoded state. Load returns nil, nil when no
// snapshot has been saved yet.
type Snapshotter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
}

type Option func(*Planner)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

func WithIDFunc(fn func() string) Option {
	return func(p *Planner) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// WithGenerator overrides the schedule generator. Without it the planner
// builds one that shares its clock and id source.
func WithGenerator(g *schedule.Generator) Option {
	return func(p *Planner) {
		p.gen = g
	}
}

type Planner struct {
	mu        sync.Mutex
	state     State
	tasks     *store.Store
	snap      Snapshotter
	gen       *schedule.Generator
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	observers []observer
	nextObs   int
}

// errUnchanged lets a mutation finish without saving or notifying.
var errUnchanged = errors.New("planner: unchanged")

// Open loads the snapshot. A missing snapshot starts from DefaultState; a
// corrupt one is logged and replaced by DefaultState. Load I/O errors are
// returned.
func Open(ctx context.Context, snap Snapshotter, opts ...Option) (*Planner, error) {
	p := &Planner{
		snap:   snap,
		logger: logging.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.gen == nil {
		p.gen = schedule.NewGenerator(schedule.WithIDFunc(p.newID), schedule.WithClock(p.now))
	}

	raw, err := snap.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load planner state: %w", err)
	}
	state := DefaultState()
	if raw != nil {
		decoded, err := Decode(raw)
		switch {
		case err == nil:
			state = decoded
		case errors.Is(err, ErrCorruptSnapshot):
			p.logger.Warn("discarding corrupt planner snapshot", "error", err)
		default:
			return nil, err
		}
	}
	p.tasks = store.New(state.Tasks...)
	state.Tasks = nil
	p.state = state
	return p, nil
}

// Bootstrap brings the schedule to the target identity and seeds the sprint
// plan note when there are no notes.
func (p *Planner) Bootstrap(ctx context.Context, startKey string, version int) error {
	if _, err := p.EnsureSchedule(ctx, startKey, version); err != nil {
		return err
	}
	_, err := p.EnsureSeedNote(ctx)
	return err
}

// EnsureSchedule regenerates when the stored start date or version differs
// from the target. It reports whether anything changed. The target is parsed
// and the new schedule generated before existing tasks are replaced.
func (p *Planner) EnsureSchedule(ctx context.Context, startKey string, version int) (bool, error) {
	return p.regenerate(ctx, startKey, version, false)
}

// Regenerate rebuilds the schedule even when the identity already matches.
// Every task edit is lost.
func (p *Planner) Regenerate(ctx context.Context, startKey string, version int) error {
	_, err := p.regenerate(ctx, startKey, version, true)
	return err
}

func (p *Planner) regenerate(ctx context.Context, startKey string, version int, force bool) (bool, error) {
	var count int
	err := p.mutate(ctx, Event{Kind: EventScheduleRegenerated}, func(s *State, tasks *store.Store) error {
		if !force && s.StartDate == startKey && s.ScheduleVersion == version {
			return errUnchanged
		}
		generated, err := p.gen.GenerateFrom(startKey)
		if err != nil {
			return err
		}
		tasks.Replace(generated)
		if s.StartDate != startKey {
			s.CurrentWeek = 0
		}
		s.StartDate = startKey
		s.ScheduleVersion = version
		count = len(generated)
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		p.logger.Error("schedule regeneration failed", "start", startKey, "version", version, "error", err)
		return false, err
	}
	p.logger.Info("schedule regenerated", "start", startKey, "version", version, "tasks", count)
	return true, nil
}

func (p *Planner) StartDate() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.StartDate
}

func (p *Planner) ScheduleVersion() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.ScheduleVersion
}

// Snapshot returns a copy of the full document.
func (p *Planner) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state.clone()
	s.Tasks = p.tasks.All()
	return s
}

// mutate applies fn to copies of the state and tasks, saves them, and then
// makes them live. fn returning an error aborts without touching anything.
func (p *Planner) mutate(ctx context.Context, ev Event, fn func(*State, *store.Store) error) error {
	p.mu.Lock()
	next := p.state.clone()
	nextTasks := p.tasks.Clone()
	if err := fn(&next, nextTasks); err != nil {
		p.mu.Unlock()
		return err
	}
	doc := next.clone()
	doc.Tasks = nextTasks.All()
	payload, err := Encode(doc)
	if err != nil {
		p.mu.Unlock()
		return fmt.Errorf("encode planner state: %w", err)
	}
	if err := p.snap.Save(ctx, payload); err != nil {
		p.mu.Unlock()
		p.logger.Error("planner save failed", "event", ev.Kind, "error", err)
		return fmt.Errorf("save planner state: %w", err)
	}
	p.state = next
	p.tasks = nextTasks
	obs := slices.Clone(p.observers)
	p.mu.Unlock()

	for _, o := range obs {
		o.fn(ev)
	}
	return nil
}

func (p *Planner) startDay() calendar.Day {
	if d, err := calendar.ParseDateKey(p.state.StartDate); err == nil {
		return d
	}
	return calendar.Today(p.now())
}
