package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%03d", n)
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
}

func generate(t *testing.T, start string) []model.Task {
	t.Helper()
	g := NewGenerator(WithIDFunc(sequentialIDs()), WithClock(fixedClock))
	tasks, err := g.GenerateFrom(start)
	require.NoError(t, err)
	return tasks
}

func onDate(tasks []model.Task, key string) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if task.Date == key {
			out = append(out, task)
		}
	}
	return out
}

func TestFirstDayHasTemplateOnly(t *testing.T) {
	tasks := generate(t, "2026-02-16")
	day0 := onDate(tasks, "2026-02-16")

	require.Len(t, day0, 7)
	assert.Equal(t, "College", day0[0].Title)
	assert.Equal(t, "09:00-13:00", day0[0].TimeSlot)
	assert.Equal(t, model.DomainCollege, day0[0].Domain)
	for _, task := range day0 {
		assert.NotEqual(t, model.DomainAptitude, task.Domain)
		assert.NotEqual(t, model.DomainUPSC, task.Domain)
		assert.NotEqual(t, model.DomainFreelance, task.Domain)
	}
}

func TestNightRoutineRollsIntoNextDay(t *testing.T) {
	tasks := generate(t, "2026-02-16")
	day1 := onDate(tasks, "2026-02-17")

	var night []model.Task
	for _, task := range day1 {
		switch task.Domain {
		case model.DomainAptitude, model.DomainUPSC, model.DomainFreelance:
			night = append(night, task)
		}
	}
	require.Len(t, night, 3)
	assert.Equal(t, "00:00-01:00", night[0].TimeSlot)
	assert.Equal(t, "01:00-04:00", night[1].TimeSlot)
	assert.Equal(t, "04:00-08:00", night[2].TimeSlot)
}

func TestLastNightSpillsPastHorizon(t *testing.T) {
	tasks := generate(t, "2026-02-16")
	start := calendar.MustParseDateKey("2026-02-16")
	spill := onDate(tasks, start.AddDays(HorizonDays).Key())

	require.Len(t, spill, 3)
	assert.Equal(t, "2026-03-30", spill[0].Date)
	assert.Empty(t, onDate(tasks, start.AddDays(HorizonDays+1).Key()))
}

func TestTotalCount(t *testing.T) {
	tasks := generate(t, "2026-02-16")
	// Mon 7, Tue 6, Wed 5, Thu 6, Fri 5, Sat 7, Sun 7 per week, plus 3 per night.
	assert.Len(t, tasks, Weeks*43+HorizonDays*3)
}

func TestGeneratedDefaults(t *testing.T) {
	for _, task := range generate(t, "2026-02-16") {
		require.NoError(t, task.Validate())
		assert.Equal(t, model.PriorityMedium, task.Priority)
		assert.False(t, task.Done)
		assert.Equal(t, fixedClock(), task.CreatedAt)
	}
}

func TestTemplateFollowsActualWeekday(t *testing.T) {
	// 2026-02-18 is a Wednesday.
	tasks := generate(t, "2026-02-18")
	day0 := onDate(tasks, "2026-02-18")
	require.Len(t, day0, 5)
	assert.Equal(t, "09:00-19:00", day0[0].TimeSlot)

	sat := onDate(tasks, "2026-02-21")
	assert.Equal(t, "Coding / Minor Project", sat[0].Title)
	assert.Equal(t, "VLSI", sat[1].Title)
}

func TestDeterministicWithInjectedIDs(t *testing.T) {
	a := generate(t, "2026-02-16")
	b := generate(t, "2026-02-16")
	assert.Equal(t, a, b)

	seen := make(map[string]bool, len(a))
	for _, task := range a {
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestGenerateFromRejectsMalformedStart(t *testing.T) {
	calls := 0
	g := NewGenerator(WithIDFunc(func() string { calls++; return "x" }))
	tasks, err := g.GenerateFrom("2026-02-30")
	require.ErrorIs(t, err, calendar.ErrMalformedKey)
	assert.Nil(t, tasks)
	assert.Zero(t, calls)
}

func TestTemplateEveryWeekdayEndsWithEveningBlock(t *testing.T) {
	for w := time.Sunday; w <= time.Saturday; w++ {
		entries := Template(w)
		require.GreaterOrEqual(t, len(entries), 5, w.String())
		tail := entries[len(entries)-4:]
		assert.Equal(t, eveningBlock, tail, w.String())
	}
}
