package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/app"
	"taskdeck/internal/task"
)

var (
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
	noticeStyle   = lipgloss.NewStyle().Italic(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" Taskdeck "))
	b.WriteString("\n\n")

	switch m.ctrl.Mode() {
	case app.ModeHelp:
		b.WriteString(m.renderHelpScreen())
	case app.ModeEdit:
		b.WriteString(m.renderTaskList())
		b.WriteString("\n---\n")
		b.WriteString(m.renderEditBox())
	default:
		b.WriteString(m.renderTaskList())
		b.WriteString("\n---\n")
		b.WriteString(m.renderDetailPanel())
	}

	b.WriteString("\n\n")
	b.WriteString(noticeStyle.Render(m.ctrl.Notice()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	style := frameStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}

func (m Model) renderTaskList() string {
	tasks := m.ctrl.Store().Tasks()
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks yet. Press %s to add one.", m.ctrl.Keys().New.Help().Key)
	}
	sel, hasSel := m.ctrl.Store().Selected()

	var b strings.Builder
	for i, t := range tasks {
		cursor := " "
		line := fmt.Sprintf("%s %s", statusGlyph(t.Status), t.Title)
		switch t.Status {
		case task.Completed:
			line = doneStyle.Render(line)
		case task.Active:
			line = activeStyle.Render(line)
		}
		if hasSel && sel == i {
			cursor = ">"
			if m.ctrl.Mode() == app.ModeView {
				line = selectedStyle.Render(line)
			}
		}
		b.WriteString(cursor + " " + line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderDetailPanel() string {
	t, ok := m.ctrl.Store().SelectedTask()
	if !ok {
		return labelStyle.Render("No task selected")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Title  :"), t.Title))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Status :"), t.Status))
	b.WriteString(fmt.Sprintf("%s %s", labelStyle.Render("Detail :"), emptyPlaceholder(t.Detail)))
	return b.String()
}

func (m Model) renderEditBox() string {
	s, ok := m.ctrl.Session()
	if !ok {
		return ""
	}
	heading := "New task"
	if s.Existing {
		heading = fmt.Sprintf("Editing task %d", s.Target+1)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(fieldPrefix(s.Field == app.FieldTitle) + "Title  : " + m.title.View())
	b.WriteString("\n")
	b.WriteString(fieldPrefix(s.Field == app.FieldDetail) + "Detail : " + m.detail.View())
	return b.String()
}

func (m Model) renderHelpScreen() string {
	keys := m.ctrl.Keys()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Tasks cycle %s → %s → %s.", task.Upcoming, task.Active, task.Completed))
	return b.String()
}

func (m Model) renderFooter() string {
	keys := m.ctrl.Keys()
	switch m.ctrl.Mode() {
	case app.ModeEdit:
		return m.help.ShortHelpView(keys.EditHelp())
	case app.ModeHelp:
		return m.help.ShortHelpView([]key.Binding{keys.Cancel})
	default:
		return m.help.ShortHelpView(keys.ShortHelp())
	}
}

func statusGlyph(s task.Status) string {
	switch s {
	case task.Active:
		return "[~]"
	case task.Completed:
		return "[x]"
	default:
		return "[ ]"
	}
}

func fieldPrefix(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

func emptyPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(empty)"
	}
	return v
}
