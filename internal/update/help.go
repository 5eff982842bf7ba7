package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/neuraplan/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Week, Action: "week"},
		{Key: m.Keys.Timeline, Action: "timeline"},
		{Key: m.Keys.Domains, Action: "domains"},
		{Key: m.Keys.Notes, Action: "notes"},
		{Key: "/", Action: "command"},
		{Key: m.Keys.Help, Action: "help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewWeek:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next day"},
			{Key: "[/]", Action: "previous/next week"},
			{Key: "j/k", Action: "move task cursor"},
			{Key: "space", Action: "toggle done"},
			{Key: "</>", Action: "move task a day earlier/later"},
			{Key: "x", Action: "delete task"},
			{Key: "g", Action: "jump to today"},
		}
	case ViewTimeline:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "open task in week view"},
		}
	case ViewDomains:
		return []KeyBinding{{Key: "j/k", Action: "select domain"}}
	case ViewNotes:
		return []KeyBinding{{Key: "j/k", Action: "select note"}}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	global := m.globalBindings()
	out := make([]key.Binding, 0, len(global))
	for _, kb := range global {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
