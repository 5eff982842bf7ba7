package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/sandeepkv93/neuraplan/internal/store"
	"github.com/sandeepkv93/neuraplan/internal/views"
)

const timelineWindow = 24

func (m Model) renderWeekView() string {
	week := m.planner.CurrentWeek()
	dates := m.planner.CurrentWeekDates()
	cols := make([]views.DayColumn, 0, len(dates))
	for _, d := range dates {
		cols = append(cols, views.DayColumn{Day: d, Tasks: store.Chronological(m.planner.TasksOn(d.Key()))})
	}
	width := 16
	if m.width > 0 {
		width = max(12, (m.width*2/3-6)/len(dates))
	}
	return views.RenderWeekGrid(views.WeekGridData{
		Week:        week,
		Weeks:       schedule.Weeks,
		RangeLabel:  m.planner.WeekRangeLabel(week),
		Columns:     cols,
		SelectedDay: m.DayCursor,
		TodayKey:    m.today().Key(),
		ColumnWidth: width,
	})
}

func (m Model) renderDayPane() string {
	return views.RenderDayDetail(views.DayDetailData{
		Day:        m.selectedDay(),
		Tasks:      m.dayTasks(),
		SelectedID: m.SelectedTaskID,
	})
}

// renderTimelineView shows a window of the timeline around the cursor.
func (m Model) renderTimelineView() string {
	timeline := m.planner.Timeline()
	if len(timeline) == 0 {
		return views.RenderTimeline(nil, "")
	}
	cursor := clamp(m.TimelineCursor, 0, len(timeline)-1)
	from := clamp(cursor-timelineWindow/2, 0, max(0, len(timeline)-timelineWindow))
	to := min(len(timeline), from+timelineWindow)
	header := fmt.Sprintf("%d-%d of %d tasks (enter: open in week)\n\n", from+1, to, len(timeline))
	return header + views.RenderTimeline(timeline[from:to], timeline[cursor].ID)
}

func (m Model) renderDomainsView() string {
	progress := m.planner.Progress()
	var b strings.Builder
	for i, line := range strings.Split(views.RenderDomains(progress, 20), "\n") {
		cursor := "  "
		if i == m.DomainCursor {
			cursor = "> "
		}
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderDomainPane() string {
	domains := model.Domains()
	d := domains[clamp(m.DomainCursor, 0, len(domains)-1)]
	next := pendingIn(m.planner.TasksIn(d.ID), 10)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: next up\n", d.Icon, d.Name)
	if len(next) == 0 {
		b.WriteString("(nothing pending)")
		return b.String()
	}
	for _, t := range next {
		fmt.Fprintf(&b, "%s %s %s\n", t.Date, t.TimeSlot, t.Title)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderNoteList() string {
	notes := m.planner.Notes()
	if len(notes) == 0 {
		return "notes:\n(none)"
	}
	var b strings.Builder
	b.WriteString("notes:\n")
	for i, n := range notes {
		cursor := " "
		if i == m.NoteCursor {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, n.DisplayTitle())
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderNoteBody() string {
	notes := m.planner.Notes()
	if len(notes) == 0 {
		return "no notes yet: neuraplan notes add <title>"
	}
	return views.RenderNote(notes[clamp(m.NoteCursor, 0, len(notes)-1)])
}

func pendingIn(tasks []model.Task, limit int) []model.Task {
	out := make([]model.Task, 0, limit)
	for _, t := range store.Chronological(tasks) {
		if t.Done {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
