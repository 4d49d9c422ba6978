package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/stayfocused/internal/domain"
)

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections := []string{titleStyle.Render(fmt.Sprintf("stayfocused · %s", m.state.View.Label()))}

	switch m.state.View {
	case domain.ViewProject:
		sections = append(sections, m.viewProject()...)
	case domain.ViewProjectList:
		sections = append(sections, m.viewProjectList()...)
	default:
		sections = append(sections, m.viewTask()...)
	}

	if m.lastErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorError))
		sections = append(sections, "", errStyle.Render(m.lastErr.Error()))
	}

	sections = append(sections, "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

func (m Model) idleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorIdle))
}

func (m Model) viewTask() []string {
	p := m.state.ActiveProject()
	if p == nil {
		return []string{m.idleStyle().Render("No projects yet. Add one with `stayfocused project add`.")}
	}

	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	sections := []string{taskStyle.Render(p.DisplayName())}

	t := m.state.ActiveTask()
	if t == nil {
		return append(sections, m.idleStyle().Render("This project has no tasks."))
	}

	color := lipgloss.Color(m.theme.ColorIdle)
	status := "paused"
	if t.Tracking {
		color = lipgloss.Color(m.theme.ColorTracking)
		status = "● tracking"
	}

	sections = append(sections,
		lipgloss.NewStyle().Bold(true).Render(t.DisplayName()),
		"",
		renderBigTime(t.ElapsedHMS, color, m.width),
		"",
		lipgloss.NewStyle().Foreground(color).Render(status),
	)
	if t.Note != "" {
		sections = append(sections, lipgloss.NewStyle().Italic(true).Faint(true).Render(t.Note))
	}

	return append(sections, m.viewCommitment(p)...)
}

func (m Model) viewCommitment(p *domain.ProjectState) []string {
	if !p.HasTimeCommitment() {
		return nil
	}
	ratio := float64(p.TotalTime) / float64(p.CommitmentToday)
	if ratio > 1 {
		ratio = 1
	}

	label := fmt.Sprintf("%s / %s today", domain.FormatHMS(p.TotalTime), domain.FormatHMS(p.CommitmentToday))
	if p.CommitmentMet() {
		label = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorMet)).Render("✓ " + label)
	}
	return []string{"", m.progress.ViewAs(ratio), label}
}

func (m Model) viewProject() []string {
	p := m.state.ActiveProject()
	if p == nil {
		return []string{m.idleStyle().Render("No projects yet.")}
	}

	sections := []string{lipgloss.NewStyle().Bold(true).Render(p.DisplayName())}
	if p.Description != "" {
		sections = append(sections, p.Description)
	}
	if p.Note != "" {
		sections = append(sections, lipgloss.NewStyle().Italic(true).Faint(true).Render(p.Note))
	}
	sections = append(sections, "")

	var rows []string
	for _, t := range p.Tasks {
		rows = append(rows, m.row(t.Current, t.Tracking, t.DisplayName(), t.ElapsedHMS))
	}
	if len(rows) == 0 {
		rows = append(rows, m.idleStyle().Render("No tasks."))
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return append(sections, m.viewCommitment(p)...)
}

func (m Model) viewProjectList() []string {
	var rows []string
	for _, p := range m.state.Projects {
		tracking := false
		for _, t := range p.Tasks {
			tracking = tracking || t.Tracking
		}
		total := domain.FormatHMS(p.TotalTime)
		if p.HasTimeCommitment() {
			total += " / " + domain.FormatHMS(p.CommitmentToday)
		}
		rows = append(rows, m.row(p.Current, tracking, p.DisplayName(), total))
	}
	if len(rows) == 0 {
		return []string{m.idleStyle().Render("No projects yet.")}
	}
	return []string{lipgloss.JoinVertical(lipgloss.Left, rows...)}
}

// row renders one list line with a cursor and tracking marker.
func (m Model) row(current, tracking bool, name, value string) string {
	cursor := "  "
	if current {
		cursor = "> "
	}
	marker := " "
	style := lipgloss.NewStyle()
	if tracking {
		marker = "●"
		style = style.Foreground(lipgloss.Color(m.theme.ColorTracking))
	}
	if current {
		style = style.Bold(true)
	}

	pad := 28 - lipgloss.Width(name)
	if pad < 1 {
		pad = 1
	}
	return style.Render(fmt.Sprintf("%s%s %s%s%s", cursor, marker, name, strings.Repeat(" ", pad), value))
}
