package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStart   = "2026-02-16"
	testVersion = 2
)

type memSnap struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	saveErr error
	loadErr error
}

func (m *memSnap) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memSnap) Save(_ context.Context, b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), b...)
	m.saves++
	return nil
}

func (m *memSnap) saved(t *testing.T) State {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := Decode(m.data)
	require.NoError(t, err)
	return s
}

func clock() time.Time {
	return time.Date(2026, 2, 18, 10, 30, 0, 0, time.Local)
}

func ids() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id%04d", n)
	}
}

func openPlanner(t *testing.T, snap *memSnap) *Planner {
	t.Helper()
	p, err := Open(context.Background(), snap, WithClock(clock), WithIDFunc(ids()))
	require.NoError(t, err)
	return p
}

func bootstrapped(t *testing.T) (*Planner, *memSnap) {
	t.Helper()
	snap := &memSnap{}
	p := openPlanner(t, snap)
	require.NoError(t, p.Bootstrap(context.Background(), testStart, testVersion))
	return p, snap
}

func TestOpenWithoutSnapshotStartsEmpty(t *testing.T) {
	p := openPlanner(t, &memSnap{})
	assert.Empty(t, p.Tasks())
	assert.Empty(t, p.Notes())
	assert.Equal(t, 0, p.CurrentWeek())
	assert.Equal(t, "", p.StartDate())
}

func TestOpenCorruptSnapshotFallsBackToDefault(t *testing.T) {
	snap := &memSnap{data: []byte(`{"startDate": "2026-02-16", "tasks": [`)}
	p := openPlanner(t, snap)
	assert.Empty(t, p.Tasks())
	assert.Equal(t, "", p.StartDate())

	changed, err := p.EnsureSchedule(context.Background(), testStart, testVersion)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestOpenReturnsLoadErrors(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := Open(context.Background(), &memSnap{loadErr: boom})
	require.ErrorIs(t, err, boom)
}

func TestBootstrapGeneratesAndSeeds(t *testing.T) {
	p, snap := bootstrapped(t)

	assert.Len(t, p.Tasks(), schedule.Weeks*43+schedule.HorizonDays*3)
	notes := p.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "📌 Sprint Plan: Feb 16 - Mar 29", notes[0].Title)
	assert.Contains(t, notes[0].Content, "Master 10 domains by March 29th.")
	assert.Contains(t, notes[0].Content, "**Week 6 (Mar 23):** Final Sprint")

	saved := snap.saved(t)
	assert.Equal(t, testStart, saved.StartDate)
	assert.Equal(t, testVersion, saved.ScheduleVersion)
	assert.Len(t, saved.Tasks, len(p.Tasks()))
}

func TestEnsureScheduleIsIdempotent(t *testing.T) {
	p, snap := bootstrapped(t)
	before := p.Tasks()
	saves := snap.saves

	changed, err := p.EnsureSchedule(context.Background(), testStart, testVersion)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, p.Tasks())
	assert.Equal(t, saves, snap.saves)

	require.NoError(t, p.Bootstrap(context.Background(), testStart, testVersion))
	assert.Len(t, p.Notes(), 1)
}

func TestRepeatBootstrapKeepsIDSequence(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	require.Equal(t, "id0385", p.Notes()[0].ID)

	require.NoError(t, p.Bootstrap(ctx, testStart, testVersion))
	seeded, err := p.EnsureSeedNote(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	added, err := p.AddTask(ctx, TaskInput{Title: "Mock interview", Domain: model.DomainDSA})
	require.NoError(t, err)
	assert.Equal(t, "id0386", added.ID)
}

func TestEnsureScheduleSurvivesReopen(t *testing.T) {
	p, snap := bootstrapped(t)
	ctx := context.Background()
	first := p.Tasks()[0]
	_, err := p.ToggleDone(ctx, first.ID)
	require.NoError(t, err)

	reopened := openPlanner(t, snap)
	changed, err := reopened.EnsureSchedule(ctx, testStart, testVersion)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := reopened.Task(first.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
}

func TestVersionBumpKeepsWeek(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	_, err := p.SetWeek(ctx, 3)
	require.NoError(t, err)

	changed, err := p.EnsureSchedule(ctx, testStart, testVersion+1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, p.CurrentWeek())
	assert.Equal(t, testVersion+1, p.ScheduleVersion())
}

func TestStartChangeResetsWeek(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	_, err := p.SetWeek(ctx, 4)
	require.NoError(t, err)

	changed, err := p.EnsureSchedule(ctx, "2026-03-02", testVersion)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, p.CurrentWeek())
	assert.Len(t, p.TasksOn("2026-03-02"), 7)
	assert.Empty(t, p.TasksOn(testStart))
}

func TestInvalidStartKeepsExistingTasks(t *testing.T) {
	p, snap := bootstrapped(t)
	before := p.Tasks()
	saves := snap.saves

	changed, err := p.EnsureSchedule(context.Background(), "2026-13-01", 3)
	require.ErrorIs(t, err, calendar.ErrMalformedKey)
	assert.False(t, changed)
	assert.Equal(t, before, p.Tasks())
	assert.Equal(t, testStart, p.StartDate())
	assert.Equal(t, saves, snap.saves)
}

func TestSetWeekClamps(t *testing.T) {
	p, snap := bootstrapped(t)
	ctx := context.Background()

	week, err := p.SetWeek(ctx, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, week)

	week, err = p.SetWeek(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 5, week)
	assert.Equal(t, 5, snap.saved(t).CurrentWeek)

	week, err = p.ShiftWeek(ctx, -2)
	require.NoError(t, err)
	assert.Equal(t, 3, week)
}

func TestSaveFailureRollsBack(t *testing.T) {
	p, snap := bootstrapped(t)
	ctx := context.Background()
	target := p.TasksOn(testStart)[0]
	persisted := snap.saved(t)

	snap.saveErr = errors.New("read-only filesystem")

	_, err := p.ToggleDone(ctx, target.ID)
	require.Error(t, err)
	got, err := p.Task(target.ID)
	require.NoError(t, err)
	assert.False(t, got.Done)

	_, err = p.SetWeek(ctx, 4)
	require.Error(t, err)
	assert.Equal(t, 0, p.CurrentWeek())

	require.Error(t, p.DeleteTask(ctx, target.ID))
	_, err = p.Task(target.ID)
	require.NoError(t, err)

	assert.Equal(t, persisted, snap.saved(t))
}

func TestTaskOperationsPersist(t *testing.T) {
	p, snap := bootstrapped(t)
	ctx := context.Background()

	added, err := p.AddTask(ctx, TaskInput{Title: "  Mock interview  ", Domain: model.DomainDSA})
	require.NoError(t, err)
	assert.Equal(t, "Mock interview", added.Title)
	assert.Equal(t, model.PriorityMedium, added.Priority)
	assert.Equal(t, "2026-02-18", added.Date)

	moved, err := p.MoveTask(ctx, added.ID, "2026-02-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20", moved.Date)

	shifted, err := p.ShiftTask(ctx, added.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-19", shifted.Date)

	high := model.PriorityHigh
	edited, err := p.EditTask(ctx, added.ID, model.TaskPatch{Priority: &high})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, edited.Priority)

	saved := snap.saved(t)
	var found bool
	for _, task := range saved.Tasks {
		if task.ID == added.ID {
			found = true
			assert.Equal(t, "2026-02-19", task.Date)
			assert.Equal(t, model.PriorityHigh, task.Priority)
		}
	}
	assert.True(t, found)

	require.NoError(t, p.DeleteTask(ctx, added.ID))
	_, err = p.Task(added.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAddTaskValidation(t *testing.T) {
	p, snap := bootstrapped(t)
	saves := snap.saves

	_, err := p.AddTask(context.Background(), TaskInput{Title: " ", Domain: model.DomainDSA})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = p.AddTask(context.Background(), TaskInput{Title: "x", Domain: "nope"})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = p.AddTask(context.Background(), TaskInput{Title: "x", Domain: model.DomainDSA, Date: "02/16/2026"})
	require.ErrorIs(t, err, calendar.ErrMalformedKey)

	assert.Equal(t, saves, snap.saves)
}

func TestUnknownTaskIsNoop(t *testing.T) {
	p, snap := bootstrapped(t)
	saves := snap.saves
	ctx := context.Background()

	_, err := p.ToggleDone(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = p.MoveTask(ctx, "missing", "2026-02-20")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, p.DeleteTask(ctx, "missing"), model.ErrNotFound)
	assert.Equal(t, saves, snap.saves)
}

func TestWeekDatesAndLabels(t *testing.T) {
	p, _ := bootstrapped(t)

	dates := p.WeekDates(1)
	require.Len(t, dates, 7)
	assert.Equal(t, "2026-02-23", dates[0].Key())
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, "Feb 16-22", p.WeekRangeLabel(0))
	assert.Equal(t, "Feb 23-Mar 1", p.WeekRangeLabel(1))
	assert.Equal(t, testStart, p.CurrentWeekDates()[0].Key())
}

func TestWeekOfAndFocusTask(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()

	cases := map[string]int{
		"2026-02-16": 0,
		"2026-02-22": 0,
		"2026-02-23": 1,
		"2026-03-29": 5,
		"2026-03-30": 5,
		"2026-02-10": 0,
	}
	for key, want := range cases {
		got, err := p.WeekOf(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}

	_, err := p.WeekOf("nope")
	require.ErrorIs(t, err, calendar.ErrMalformedKey)

	target := p.TasksOn("2026-03-10")[0]
	week, err := p.FocusTask(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, week)
	assert.Equal(t, 3, p.CurrentWeek())
}

func TestTimelineIsChronological(t *testing.T) {
	p, _ := bootstrapped(t)
	timeline := p.Timeline()
	require.NotEmpty(t, timeline)
	assert.Equal(t, testStart, timeline[0].Date)
	assert.Equal(t, "09:00-13:00", timeline[0].TimeSlot)
	assert.Equal(t, "2026-03-30", timeline[len(timeline)-1].Date)
	assert.Equal(t, "04:00-08:00", timeline[len(timeline)-1].TimeSlot)
}

func TestSummaryAndProgress(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	for _, task := range p.TasksOn("2026-02-18") {
		_, err := p.ToggleDone(ctx, task.ID)
		require.NoError(t, err)
	}

	s := p.Summary(clock())
	assert.Equal(t, 8, s.TodayTotal)
	assert.Equal(t, 8, s.TodayDone)
	assert.Equal(t, 100, s.TodayPct)
	assert.Equal(t, 8, s.Done)

	progress := p.Progress()
	require.Len(t, progress, 10)
	assert.Equal(t, model.DomainAIML, progress[0].Domain.ID)
}

func TestNotesCRUD(t *testing.T) {
	p, snap := bootstrapped(t)
	ctx := context.Background()

	n, err := p.AddNote(ctx, " Reading list ", "- SICP")
	require.NoError(t, err)
	assert.Equal(t, "Reading list", n.Title)

	found, err := p.FindNote(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "- SICP", found.Content)
	_, err = p.FindNote("id0")
	assert.ErrorIs(t, err, model.ErrValidation)

	updated, err := p.UpdateNote(ctx, n.ID, "Books", "- SICP\n- CLRS")
	require.NoError(t, err)
	assert.Equal(t, "Books", updated.Title)
	assert.Len(t, snap.saved(t).Notes, 2)

	require.NoError(t, p.DeleteNote(ctx, n.ID))
	assert.Len(t, p.Notes(), 1)
	assert.ErrorIs(t, p.DeleteNote(ctx, n.ID), model.ErrNotFound)

	seeded, err := p.EnsureSeedNote(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestObserversRunAfterCommitWithoutDeadlock(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	target := p.TasksOn(testStart)[0]

	var seen []Event
	var doneInside bool
	unsubscribe := p.Subscribe(func(ev Event) {
		seen = append(seen, ev)
		if ev.Kind != EventTaskToggled {
			return
		}
		got, err := p.Task(ev.TaskID)
		require.NoError(t, err)
		doneInside = got.Done
		if len(seen) == 1 {
			_, err := p.SetWeek(ctx, 2)
			require.NoError(t, err)
		}
	})

	_, err := p.ToggleDone(ctx, target.ID)
	require.NoError(t, err)
	assert.True(t, doneInside)
	require.Len(t, seen, 2)
	assert.Equal(t, EventWeekChanged, seen[1].Kind)
	assert.Equal(t, 2, p.CurrentWeek())

	unsubscribe()
	_, err = p.SetWeek(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestObserversSkippedOnFailure(t *testing.T) {
	p, snap := bootstrapped(t)
	calls := 0
	p.Subscribe(func(Event) { calls++ })

	snap.saveErr = errors.New("nope")
	_, err := p.SetWeek(context.Background(), 2)
	require.Error(t, err)
	_, err = p.ToggleDone(context.Background(), "missing")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestRegenerateDiscardsEdits(t *testing.T) {
	p, _ := bootstrapped(t)
	ctx := context.Background()
	_, err := p.AddTask(ctx, TaskInput{Title: "extra", Domain: model.DomainCoding})
	require.NoError(t, err)

	require.NoError(t, p.Regenerate(ctx, testStart, testVersion))
	assert.Len(t, p.Tasks(), schedule.Weeks*43+schedule.HorizonDays*3)
}

func TestDecodeClampsWeekAndDropsBrokenTasks(t *testing.T) {
	raw := []byte(`{"startDate":"2026-02-16","currentWeek":9,"scheduleVersion":2,
		"tasks":[{"id":"a","title":"ok","domain":"dsa","priority":"medium","date":"2026-02-16"},
		{"id":"b","title":"bad date","domain":"dsa","priority":"medium","date":"16/02/2026"},
		{"id":"","title":"no id","domain":"dsa","priority":"medium","date":"2026-02-16"},
		{"id":"c","title":"stale domain","domain":"retired","priority":"medium","date":"2026-02-17"}]}`)
	s, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, s.CurrentWeek)
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, "a", s.Tasks[0].ID)
	assert.Equal(t, "c", s.Tasks[1].ID)
	assert.NotNil(t, s.Notes)

	_, err = Decode([]byte("   "))
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
	_, err = Decode([]byte("[]"))
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}
