package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
)

var ErrCorruptSnapshot = errors.New("planner: corrupt snapshot")

type SnapshotError struct {
	Err error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("planner: corrupt snapshot: %v", e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }

func (e *SnapshotError) Is(target error) bool {
	return target == ErrCorruptSnapshot
}

// State is the whole persisted document.
type State struct {
	StartDate       string       `json:"startDate" yaml:"startDate"`
	CurrentWeek     int          `json:"currentWeek" yaml:"currentWeek"`
	ScheduleVersion int          `json:"scheduleVersion" yaml:"scheduleVersion"`
	Tasks           []model.Task `json:"tasks" yaml:"tasks"`
	Notes           []model.Note `json:"notes" yaml:"notes"`
}

func DefaultState() State {
	return State{
		Tasks: []model.Task{},
		Notes: []model.Note{},
	}
}

func ClampWeek(n int) int {
	return max(0, min(n, schedule.Weeks-1))
}

func (s State) clone() State {
	s.Tasks = slices.Clone(s.Tasks)
	s.Notes = slices.Clone(s.Notes)
	return s
}

func Encode(s State) ([]byte, error) {
	if s.Tasks == nil {
		s.Tasks = []model.Task{}
	}
	if s.Notes == nil {
		s.Notes = []model.Note{}
	}
	return json.Marshal(s)
}

// Decode parses a snapshot. Tasks without an id or with a malformed date
// are dropped; unknown domains are kept and render with the fallback
// domain.
func Decode(raw []byte) (State, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return State{}, &SnapshotError{Err: errors.New("empty document")}
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, &SnapshotError{Err: err}
	}
	s.CurrentWeek = ClampWeek(s.CurrentWeek)
	tasks := make([]model.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if strings.TrimSpace(t.ID) == "" {
			continue
		}
		if _, err := calendar.ParseDateKey(t.Date); err != nil {
			continue
		}
		tasks = append(tasks, t)
	}
	s.Tasks = tasks
	if s.Notes == nil {
		s.Notes = []model.Note{}
	}
	return s, nil
}
