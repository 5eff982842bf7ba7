package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/neuraplan/internal/model"
)

type AppData struct {
	Header       string
	Tabs         string
	Body         string
	SidePane     string
	StatusLine   string
	Footer       string
	Notification string
	Width        int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12"))
)

var colorEnabled = true

// SetColor turns domain colors and glamour styling on or off.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func domainStyle(d model.Domain) lipgloss.Style {
	if !colorEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color))
}

func RenderApp(data AppData) string {
	width := data.Width
	if width <= 0 {
		width = 120
	}
	body := data.Body
	if data.SidePane != "" {
		main := panelStyle.Width(width*2/3 - 4).Render(data.Body)
		side := panelStyle.Width(width/3 - 4).Render(data.SidePane)
		body = lipgloss.JoinHorizontal(lipgloss.Top, main, side)
	} else {
		body = panelStyle.Width(width - 4).Render(data.Body)
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{headerStyle.Render(data.Header)}
	if data.Tabs != "" {
		lines = append(lines, data.Tabs)
	}
	lines = append(lines, body, status)
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderTabs marks active among names.
func RenderTabs(names []string, active int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := "[" + string(rune('1'+i)) + "] " + name
		if i == active {
			parts = append(parts, activeTab.Render(label))
			continue
		}
		parts = append(parts, dimStyle.Render(label))
	}
	return strings.Join(parts, "  ")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if !colorEnabled {
		style = "notty"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
