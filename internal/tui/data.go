package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pui-dev/pui/pkg/model"
)

func (m MainModel) refreshBindings() tea.Cmd {
	resolve := m.resolve
	return func() tea.Msg {
		return bindingsMsg(resolve())
	}
}

func rowsFrom(bindings []model.PortBinding) []table.Row {
	rows := make([]table.Row, 0, len(bindings))
	for _, b := range bindings {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", b.Port),
			fmt.Sprintf("%d", b.PID),
			b.ProcessName,
			b.State,
		})
	}
	return rows
}

// selectedPort returns the port under the cursor, or 0 when nothing is
// selected.
func (m MainModel) selectedPort() int {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.bindings) {
		return 0
	}
	return m.bindings[idx].Port
}

// restoreSelection keeps the cursor on the same port across a refresh when
// that port survived, otherwise moves it to the top.
func (m *MainModel) restoreSelection(port int) {
	if port > 0 {
		for i, b := range m.bindings {
			if b.Port == port {
				m.table.SetCursor(i)
				return
			}
		}
	}
	m.table.SetCursor(0)
}

func (m *MainModel) resizeTable() {
	tableWidth := m.width - 6
	if tableWidth < 20 {
		tableWidth = 20
	}

	tableHeight := m.height - 9
	if tableHeight < 5 {
		tableHeight = 5
	}

	// Port(8)+PID(8)+Status(10) are fixed; the name column takes the rest.
	fixedWidth := 26
	buffer := 10
	nameWidth := tableWidth - fixedWidth - buffer
	if nameWidth < 12 {
		nameWidth = 12
	}

	columns := []table.Column{
		{Title: "Port", Width: 8},
		{Title: "PID", Width: 8},
		{Title: "Process Name", Width: nameWidth},
		{Title: "Status", Width: 10},
	}
	m.table.SetColumns(columns)
	m.table.SetWidth(tableWidth)
	m.table.SetHeight(tableHeight)
}
