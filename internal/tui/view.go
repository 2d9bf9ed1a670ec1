package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := baseStyle.
		Width(m.width-2).
		Height(m.height-2).
		Padding(0, 1)

	header := titleStyle.Render("pui") + " " +
		statusStyle.Render("Process Port Manager")

	status := statusStyle.Render(m.statusMsg)
	if m.notice != "" {
		status = errorStyle.Render(m.notice)
	}

	var footerContent string
	if m.confirming {
		footerContent = confirmStyle.Render(fmt.Sprintf(
			"Kill process '%s' (PID %d) on port %d? [y]es / [n]o",
			m.target.ProcessName, m.target.PID, m.target.Port,
		))
	} else {
		helpText := "j/k: Move | x: Kill Process | r: Refresh | q: Quit"
		footerContent = helpText
		if m.version != "" {
			gap := m.width - 6 - lipgloss.Width(helpText) - lipgloss.Width(m.version)
			if gap > 0 {
				footerContent = helpText + strings.Repeat(" ", gap) + m.version
			}
		}
	}
	if m.width > 6 {
		footerContent = wrap.String(footerContent, m.width-6)
	}

	return outerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			lipgloss.NewStyle().Height(1).Render(""),
			m.table.View(),
			lipgloss.NewStyle().Height(1).Render(""),
			lipgloss.NewStyle().PaddingLeft(1).Render(status),
			footerStyle.Width(m.width-4).Render(footerContent),
		),
	)
}
