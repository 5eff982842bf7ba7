package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

var sprintThemes = [schedule.Weeks]string{
	"Foundation & Assessment",
	"Core Concepts",
	"Deep Dive",
	"Projects & Practice",
	"Review & Polish",
	"Final Sprint",
}

func (p *Planner) Notes() []model.Note {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.state.Notes)
}

// FindNote resolves an exact id or a unique id prefix.
func (p *Planner) FindNote(ref string) (model.Note, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ref = strings.TrimSpace(ref)
	var match *model.Note
	for i := range p.state.Notes {
		n := &p.state.Notes[i]
		if n.ID == ref {
			return *n, nil
		}
		if ref != "" && strings.HasPrefix(n.ID, ref) {
			if match != nil {
				return model.Note{}, &model.ValidationError{Field: "id", Reason: fmt.Sprintf("prefix %q is ambiguous", ref)}
			}
			match = n
		}
	}
	if match == nil {
		return model.Note{}, model.NoteNotFound(ref)
	}
	return *match, nil
}

func (p *Planner) AddNote(ctx context.Context, title, content string) (model.Note, error) {
	now := p.now().UTC()
	n := model.Note{
		ID:        p.newID(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := p.mutate(ctx, Event{Kind: EventNoteChanged, NoteID: n.ID}, func(s *State, _ *store.Store) error {
		s.Notes = append(s.Notes, n)
		return nil
	})
	return n, err
}

func (p *Planner) UpdateNote(ctx context.Context, id, title, content string) (model.Note, error) {
	var out model.Note
	err := p.mutate(ctx, Event{Kind: EventNoteChanged, NoteID: id}, func(s *State, _ *store.Store) error {
		i := slices.IndexFunc(s.Notes, func(n model.Note) bool { return n.ID == id })
		if i < 0 {
			return model.NoteNotFound(id)
		}
		s.Notes[i].Title = strings.TrimSpace(title)
		s.Notes[i].Content = content
		s.Notes[i].UpdatedAt = p.now().UTC()
		out = s.Notes[i]
		return nil
	})
	return out, err
}

func (p *Planner) DeleteNote(ctx context.Context, id string) error {
	return p.mutate(ctx, Event{Kind: EventNoteChanged, NoteID: id}, func(s *State, _ *store.Store) error {
		i := slices.IndexFunc(s.Notes, func(n model.Note) bool { return n.ID == id })
		if i < 0 {
			return model.NoteNotFound(id)
		}
		s.Notes = slices.Delete(s.Notes, i, i+1)
		return nil
	})
}

// EnsureSeedNote adds the sprint plan note when there are no notes at all.
func (p *Planner) EnsureSeedNote(ctx context.Context) (bool, error) {
	p.mu.Lock()
	seeded := len(p.state.Notes) > 0
	p.mu.Unlock()
	if seeded {
		return false, nil
	}
	now := p.now().UTC()
	id := p.newID()
	err := p.mutate(ctx, Event{Kind: EventNoteChanged, NoteID: id}, func(s *State, _ *store.Store) error {
		if len(s.Notes) > 0 {
			return errUnchanged
		}
		start, err := calendar.ParseDateKey(s.StartDate)
		if err != nil {
			return err
		}
		title, content := sprintPlan(start)
		s.Notes = append(s.Notes, model.Note{ID: id, Title: title, Content: content, CreatedAt: now, UpdatedAt: now})
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	return err == nil, err
}

func sprintPlan(start calendar.Day) (string, string) {
	last := start.AddDays(schedule.HorizonDays - 1)
	title := fmt.Sprintf("📌 Sprint Plan: %s - %s", shortDate(start), shortDate(last))

	var b strings.Builder
	fmt.Fprintf(&b, "## 🚀 %d-Week Sprint Plan\n\n", schedule.Weeks)
	fmt.Fprintf(&b, "**Goal:** Master %d domains by %s.\n\n", len(model.Domains()), longDate(last))
	for i, theme := range sprintThemes {
		fmt.Fprintf(&b, "- **Week %d (%s):** %s\n", i+1, shortDate(start.AddDays(i*calendar.DaysPerWeek)), theme)
	}
	return title, b.String()
}

func shortDate(d calendar.Day) string {
	return fmt.Sprintf("%s %d", calendar.MonthName(d.Month()), d.DayOfMonth())
}

func longDate(d calendar.Day) string {
	return fmt.Sprintf("%s %s", d.Month().String(), ordinal(d.DayOfMonth()))
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
