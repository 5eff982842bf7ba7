package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/neuraplan/internal/calendar"
	"github.com/sandeepkv93/neuraplan/internal/model"
	"github.com/sandeepkv93/neuraplan/internal/store"
)

type DayColumn struct {
	Day   calendar.Day
	Tasks []model.Task
}

type WeekGridData struct {
	Week        int
	Weeks       int
	RangeLabel  string
	Columns     []DayColumn
	SelectedDay int
	TodayKey    string
	ColumnWidth int
}

type DayDetailData struct {
	Day        calendar.Day
	Tasks      []model.Task
	SelectedID string
}

type OverviewData struct {
	Owner      string
	Today      calendar.Day
	Week       int
	Weeks      int
	RangeLabel string
	Summary    store.Summary
	Progress   []store.DomainProgress
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

// ColumnHeader labels a grid column from the date's own weekday.
func ColumnHeader(d calendar.Day) string {
	return fmt.Sprintf("%s %d", calendar.WeekdayName(d.Weekday()), d.DayOfMonth())
}

func RenderWeekGrid(data WeekGridData) string {
	width := data.ColumnWidth
	if width <= 0 {
		width = 16
	}
	cols := make([]string, 0, len(data.Columns))
	for i, col := range data.Columns {
		header := ColumnHeader(col.Day)
		if col.Day.Key() == data.TodayKey {
			header += " •"
		}
		lines := []string{header, strings.Repeat("─", width-1)}
		if i == data.SelectedDay {
			lines[0] = cursorStyle.Render(header)
		}
		if len(col.Tasks) == 0 {
			lines = append(lines, dimStyle.Render("(free)"))
		}
		for _, t := range col.Tasks {
			d := model.DomainOf(t.Domain)
			label := truncate(model.SlotStart(t.TimeSlot)+" "+d.Icon+" "+t.Title, width-1)
			if t.Done {
				lines = append(lines, doneStyle.Render(label))
				continue
			}
			lines = append(lines, domainStyle(d).Render(label))
		}
		cols = append(cols, lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n")))
	}
	title := fmt.Sprintf("Week %d of %d · %s", data.Week+1, data.Weeks, data.RangeLabel)
	return headerStyle.Render(title) + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// RenderDayDetail groups a day's tasks by domain in catalog order.
func RenderDayDetail(data DayDetailData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(data.Day.Label()))
	if len(data.Tasks) == 0 {
		b.WriteString(dimStyle.Render("no tasks"))
		return b.String()
	}
	done := 0
	for _, t := range data.Tasks {
		if t.Done {
			done++
		}
	}
	fmt.Fprintf(&b, "%d/%d done\n", done, len(data.Tasks))
	for _, d := range model.Domains() {
		var group []model.Task
		for _, t := range data.Tasks {
			if model.DomainOf(t.Domain).ID == d.ID {
				group = append(group, t)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", domainStyle(d).Bold(true).Render(d.Icon+" "+d.Name))
		for _, t := range group {
			b.WriteString(taskLine(t, t.ID == data.SelectedID) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func taskLine(t model.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	check := "[ ]"
	if t.Done {
		check = "[x]"
	}
	slot := t.TimeSlot
	if slot == "" {
		slot = "anytime"
	}
	line := fmt.Sprintf("%s %s %-11s %s", cursor, check, slot, t.Title)
	if t.Priority == model.PriorityHigh {
		line += " !"
	}
	switch {
	case selected:
		return cursorStyle.Render(line)
	case t.Done:
		return doneStyle.Render(line)
	default:
		return line
	}
}

// RenderTimeline prints tasks already in chronological order under date
// headings.
func RenderTimeline(tasks []model.Task, selectedID string) string {
	if len(tasks) == 0 {
		return dimStyle.Render("(timeline empty)")
	}
	var b strings.Builder
	current := ""
	for _, t := range tasks {
		if t.Date != current {
			current = t.Date
			label := current
			if d, err := calendar.ParseDateKey(current); err == nil {
				label = d.Label()
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(headerStyle.Render(label) + "\n")
		}
		d := model.DomainOf(t.Domain)
		b.WriteString(taskLine(t, t.ID == selectedID) + " " + domainStyle(d).Render(d.Icon) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDomains(progress []store.DomainProgress, barWidth int) string {
	if barWidth <= 0 {
		barWidth = 20
	}
	var b strings.Builder
	for _, p := range progress {
		name := fmt.Sprintf("%s %-24s", p.Domain.Icon, p.Domain.Name)
		bar := ProgressBar(float64(p.Percent)/100, barWidth)
		fmt.Fprintf(&b, "%s %s %3d%% (%d/%d)\n", domainStyle(p.Domain).Render(name), bar, p.Percent, p.Done, p.Total)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderOverview(data OverviewData) string {
	var b strings.Builder
	greeting := "Welcome back"
	if data.Owner != "" {
		greeting += ", " + data.Owner
	}
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(greeting))
	fmt.Fprintf(&b, "Today is %s · week %d of %d (%s)\n\n", data.Today.Label(), data.Week+1, data.Weeks, data.RangeLabel)
	s := data.Summary
	fmt.Fprintf(&b, "today    %s %3d%% (%d/%d)\n", ProgressBar(float64(s.TodayPct)/100, 20), s.TodayPct, s.TodayDone, s.TodayTotal)
	fmt.Fprintf(&b, "overall  %s %3d%% (%d/%d, %d pending)\n", ProgressBar(float64(s.Percent)/100, 20), s.Percent, s.Done, s.Total, s.Pending)
	if len(data.Progress) > 0 {
		b.WriteString("\n" + RenderDomains(data.Progress, 12))
	}
	return b.String()
}

func RenderNote(n model.Note) string {
	header := headerStyle.Render(n.DisplayTitle())
	meta := dimStyle.Render(fmt.Sprintf("updated %s", n.UpdatedAt.Local().Format("Jan 2 15:04")))
	body := RenderMarkdown(n.Content)
	if body == "" {
		body = dimStyle.Render("(empty note)")
	}
	return header + "\n" + meta + "\n\n" + body
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func ProgressBar(progress float64, width int) string {
	progress = max(0, min(progress, 1))
	filled := min(int(progress*float64(width)), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
