// Package store holds the mutable task collection and its queries.
//
// Every operation is synchronous and all-or-nothing: a failed call leaves
// the collection exactly as it was. The store never persists anything; the
// caller saves after a successful mutation.
package store

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
)

type Store struct {
	tasks []model.Task
	index map[string]int
}

// New builds a store in the given order. Later duplicates of an id are
// dropped so the index stays unique.
func New(tasks ...model.Task) *Store {
	s := &Store{}
	s.Replace(tasks)
	return s
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Add(t model.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := s.index[t.ID]; exists {
		return &model.ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate task id %q", t.ID)}
	}
	s.index[t.ID] = len(s.tasks)
	s.tasks = append(s.tasks, t)
	return nil
}

func (s *Store) Get(id string) (model.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, model.TaskNotFound(id)
	}
	return s.tasks[i], nil
}

func (s *Store) ToggleDone(id string) (model.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, model.TaskNotFound(id)
	}
	s.tasks[i].Done = !s.tasks[i].Done
	return s.tasks[i], nil
}

// Move changes only the date of a task.
func (s *Store) Move(id, dateKey string) (model.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, model.TaskNotFound(id)
	}
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return model.Task{}, err
	}
	s.tasks[i].Date = dateKey
	return s.tasks[i], nil
}

func (s *Store) Edit(id string, patch model.TaskPatch) (model.Task, error) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, model.TaskNotFound(id)
	}
	next := patch.Apply(s.tasks[i])
	if err := next.Validate(); err != nil {
		return model.Task{}, err
	}
	s.tasks[i] = next
	return next, nil
}

func (s *Store) Delete(id string) error {
	i, ok := s.index[id]
	if !ok {
		return model.TaskNotFound(id)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.tasks); j++ {
		s.index[s.tasks[j].ID] = j
	}
	return nil
}

// ByDate returns tasks filed under dateKey in insertion order.
func (s *Store) ByDate(dateKey string) []model.Task {
	return s.filter(func(t model.Task) bool { return t.Date == dateKey })
}

func (s *Store) ByDomain(id model.DomainID) []model.Task {
	return s.filter(func(t model.Task) bool { return t.Domain == id })
}

func (s *Store) All() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find returns the task whose id equals ref, or the single task whose id
// starts with ref.
func (s *Store) Find(ref string) (model.Task, error) {
	ref = strings.TrimSpace(ref)
	if t, err := s.Get(ref); err == nil {
		return t, nil
	}
	var match *model.Task
	for i := range s.tasks {
		if ref != "" && strings.HasPrefix(s.tasks[i].ID, ref) {
			if match != nil {
				return model.Task{}, &model.ValidationError{Field: "id", Reason: fmt.Sprintf("prefix %q is ambiguous", ref)}
			}
			match = &s.tasks[i]
		}
	}
	if match == nil {
		return model.Task{}, model.TaskNotFound(ref)
	}
	return *match, nil
}

// Replace swaps the whole collection, used by schedule regeneration.
func (s *Store) Replace(tasks []model.Task) {
	s.tasks = make([]model.Task, 0, len(tasks))
	s.index = make(map[string]int, len(tasks))
	for _, t := range tasks {
		if _, dup := s.index[t.ID]; dup {
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
}

func (s *Store) Clone() *Store {
	return New(s.tasks...)
}

func (s *Store) filter(keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
