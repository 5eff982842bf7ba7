package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", raw)}
	}
	return p, nil
}

type Task struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Domain      DomainID  `json:"domain" yaml:"domain"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	Date        string    `json:"date" yaml:"date"`
	TimeSlot    string    `json:"timeSlot,omitempty" yaml:"timeSlot,omitempty"`
	Done        bool      `json:"done" yaml:"done"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return &ValidationError{Field: "id", Reason: "task id is required"}
	}
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "task title is required"}
	}
	if !t.Domain.IsValid() {
		return &ValidationError{Field: "domain", Reason: fmt.Sprintf("unknown domain %q", t.Domain)}
	}
	if !t.Priority.IsValid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", t.Priority)}
	}
	if _, err := calendar.ParseDateKey(t.Date); err != nil {
		return err
	}
	return nil
}

// Day returns the parsed date. Tasks that passed Validate always parse.
func (t Task) Day() (calendar.Day, error) {
	return calendar.ParseDateKey(t.Date)
}

// SlotStart returns the "HH:MM" start of a "HH:MM-HH:MM" slot.
func SlotStart(slot string) string {
	slot = strings.TrimSpace(slot)
	if i := strings.IndexByte(slot, '-'); i >= 0 {
		return strings.TrimSpace(slot[:i])
	}
	return slot
}

// TaskPatch carries optional field edits. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Domain      *DomainID
	Priority    *Priority
	Date        *string
	TimeSlot    *string
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Domain == nil &&
		p.Priority == nil && p.Date == nil && p.TimeSlot == nil
}

func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Domain != nil {
		t.Domain = *p.Domain
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Date != nil {
		t.Date = strings.TrimSpace(*p.Date)
	}
	if p.TimeSlot != nil {
		t.TimeSlot = strings.TrimSpace(*p.TimeSlot)
	}
	return t
}
