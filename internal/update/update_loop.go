package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/neuraplan/internal/planner"
	"github.com/sandeepkv93/neuraplan/internal/schedule"
	"github.com/sandeepkv93/neuraplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForEventCmd(m.events)
}

func waitForEventCmd(ch <-chan planner.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return PlannerChangedMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Week:
			m.CurrentView = ViewWeek
			m.syncSelection()
			return m, nil
		case m.Keys.Timeline:
			m.CurrentView = ViewTimeline
			return m, nil
		case m.Keys.Domains:
			m.CurrentView = ViewDomains
			return m, nil
		case m.Keys.Notes:
			m.CurrentView = ViewNotes
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewWeek:
			return m.handleWeekKey(typed), nil
		case ViewTimeline:
			return m.handleTimelineKey(typed), nil
		case ViewDomains:
			return m.handleDomainsKey(typed), nil
		case ViewNotes:
			return m.handleNotesKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case PlannerChangedMsg:
		m.syncSelection()
		return m, waitForEventCmd(m.events)
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body, side := "", ""
	switch m.CurrentView {
	case ViewWeek:
		body = m.renderWeekView()
		side = m.renderDayPane()
	case ViewTimeline:
		body = m.renderTimelineView()
	case ViewDomains:
		body = m.renderDomainsView()
		side = m.renderDomainPane()
	case ViewNotes:
		body = m.renderNoteBody()
		side = m.renderNoteList()
	}
	if m.HelpVisible {
		side = strings.TrimSpace(side + "\n\n" + m.renderHelpView())
	}

	title := "neuraplan"
	if m.Owner != "" {
		title += " · " + m.Owner
	}

	names := make([]string, len(viewOrder))
	active := 0
	for i, v := range viewOrder {
		names[i] = string(v)
		if v == m.CurrentView {
			active = i
		}
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("%s | week %d/%d %s | %s", title, m.planner.CurrentWeek()+1, schedule.Weeks, m.planner.WeekRangeLabel(m.planner.CurrentWeek()), m.today().Label()),
		Tabs:         views.RenderTabs(names, active),
		Body:         body,
		SidePane:     side,
		StatusLine:   status,
		Notification: views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()),
		Footer:       fmt.Sprintf("keys: %s week | %s timeline | %s domains | %s notes | / cmd | %s help | %s quit", m.Keys.Week, m.Keys.Timeline, m.Keys.Domains, m.Keys.Notes, m.Keys.Help, m.Keys.Quit),
		Width:        m.width,
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewWeek, ViewTimeline, ViewDomains, ViewNotes:
		return true
	default:
		return false
	}
}
