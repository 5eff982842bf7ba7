package store

import (
	"testing"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id, date, slot string) model.Task {
	return model.Task{
		ID:        id,
		Title:     "Task " + id,
		Domain:    model.DomainDSA,
		Priority:  model.PriorityMedium,
		Date:      date,
		TimeSlot:  slot,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Add(task("a", "2026-02-16", "23:00-00:00")))
	require.NoError(t, s.Add(task("b", "2026-02-17", "00:00-01:00")))
	require.NoError(t, s.Add(task("c", "2026-02-16", "09:00-13:00")))
	return s
}

func TestAddRejectsBlankTitleAndDuplicates(t *testing.T) {
	s := seeded(t)

	blank := task("d", "2026-02-16", "")
	blank.Title = "  "
	err := s.Add(blank)
	require.ErrorIs(t, err, model.ErrValidation)

	err = s.Add(task("a", "2026-02-18", ""))
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 3, s.Len())
}

func TestByDateKeepsInsertionOrder(t *testing.T) {
	s := seeded(t)
	got := s.ByDate("2026-02-16")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Empty(t, s.ByDate("2026-03-01"))
}

func TestToggleDone(t *testing.T) {
	s := seeded(t)
	got, err := s.ToggleDone("b")
	require.NoError(t, err)
	assert.True(t, got.Done)

	got, err = s.ToggleDone("b")
	require.NoError(t, err)
	assert.False(t, got.Done)

	_, err = s.ToggleDone("zzz")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMoveChangesOnlyDate(t *testing.T) {
	s := seeded(t)
	_, err := s.ToggleDone("a")
	require.NoError(t, err)
	before, err := s.Get("a")
	require.NoError(t, err)

	moved, err := s.Move("a", "2026-02-20")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-20", moved.Date)
	assert.Equal(t, before.TimeSlot, moved.TimeSlot)
	assert.Equal(t, before.Domain, moved.Domain)
	assert.Equal(t, before.Priority, moved.Priority)
	assert.Equal(t, before.Done, moved.Done)
	assert.Equal(t, before.Title, moved.Title)
}

func TestMoveUnknownIDIsNoop(t *testing.T) {
	s := seeded(t)
	before := s.All()

	_, err := s.Move("missing", "2026-02-20")
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, before, s.All())
}

func TestMoveMalformedDateLeavesTask(t *testing.T) {
	s := seeded(t)
	_, err := s.Move("a", "2026-2-20")
	require.ErrorIs(t, err, calendar.ErrMalformedKey)

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-16", got.Date)
}

func TestEditValidatesBeforeCommit(t *testing.T) {
	s := seeded(t)
	empty := ""
	_, err := s.Edit("a", model.TaskPatch{Title: &empty})
	require.ErrorIs(t, err, model.ErrValidation)

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Task a", got.Title)

	title := "Graphs"
	domain := model.DomainCSCore
	edited, err := s.Edit("a", model.TaskPatch{Title: &title, Domain: &domain})
	require.NoError(t, err)
	assert.Equal(t, "Graphs", edited.Title)
	assert.Equal(t, model.DomainCSCore, edited.Domain)
	assert.Len(t, s.ByDomain(model.DomainCSCore), 1)
}

func TestDeleteReindexes(t *testing.T) {
	s := seeded(t)
	require.NoError(t, s.Delete("a"))
	assert.Equal(t, 2, s.Len())

	_, err := s.Get("a")
	assert.ErrorIs(t, err, model.ErrNotFound)

	got, err := s.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)

	assert.ErrorIs(t, s.Delete("a"), model.ErrNotFound)
}

func TestFindByPrefix(t *testing.T) {
	s := New(task("abc-1", "2026-02-16", ""), task("abd-2", "2026-02-16", ""))

	got, err := s.Find("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc-1", got.ID)

	_, err = s.Find("ab")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.Find("x")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCloneIsIndependent(t *testing.T) {
	s := seeded(t)
	c := s.Clone()
	require.NoError(t, c.Delete("a"))
	_, err := c.ToggleDone("b")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	orig, err := s.Get("b")
	require.NoError(t, err)
	assert.False(t, orig.Done)
}
