package planner

import (
	"context"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

func (p *Planner) CurrentWeek() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.CurrentWeek
}

// SetWeek clamps n into the schedule and persists it.
func (p *Planner) SetWeek(ctx context.Context, n int) (int, error) {
	return p.setWeek(ctx, func(int) int { return n })
}

func (p *Planner) ShiftWeek(ctx context.Context, delta int) (int, error) {
	return p.setWeek(ctx, func(cur int) int { return cur + delta })
}

func (p *Planner) setWeek(ctx context.Context, target func(cur int) int) (int, error) {
	var week int
	err := p.mutate(ctx, Event{Kind: EventWeekChanged}, func(s *State, _ *store.Store) error {
		s.CurrentWeek = ClampWeek(target(s.CurrentWeek))
		week = s.CurrentWeek
		return nil
	})
	if err != nil {
		return p.CurrentWeek(), err
	}
	return week, nil
}

// WeekDates returns the seven days of week offset counted from the start
// date.
func (p *Planner) WeekDates(offset int) []calendar.Day {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calendar.WeekDates(p.startDay(), offset)
}

func (p *Planner) CurrentWeekDates() []calendar.Day {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calendar.WeekDates(p.startDay(), p.state.CurrentWeek)
}

func (p *Planner) WeekRangeLabel(offset int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return calendar.WeekRangeLabel(p.startDay(), offset)
}

// WeekOf returns the clamped week index containing dateKey.
func (p *Planner) WeekOf(dateKey string) (int, error) {
	day, err := calendar.ParseDateKey(dateKey)
	if err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return weekOf(p.startDay(), day), nil
}

func weekOf(start, day calendar.Day) int {
	diff := start.DaysUntil(day)
	week := diff / calendar.DaysPerWeek
	if diff < 0 && diff%calendar.DaysPerWeek != 0 {
		week--
	}
	return ClampWeek(week)
}

// FocusTask moves the current week to the week holding task id.
func (p *Planner) FocusTask(ctx context.Context, id string) (int, error) {
	var week int
	err := p.mutate(ctx, Event{Kind: EventWeekChanged, TaskID: id}, func(s *State, tasks *store.Store) error {
		t, err := tasks.Get(id)
		if err != nil {
			return err
		}
		day, err := t.Day()
		if err != nil {
			return err
		}
		start, err := calendar.ParseDateKey(s.StartDate)
		if err != nil {
			return err
		}
		s.CurrentWeek = weekOf(start, day)
		week = s.CurrentWeek
		return nil
	})
	return week, err
}
