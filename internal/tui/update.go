package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pui-dev/pui/internal/kill"
	"github.com/pui-dev/pui/pkg/model"
)

// noticeDuration is the minimum time an error notice stays visible.
const noticeDuration = 5 * time.Second

type bindingsMsg []model.PortBinding

type killResultMsg kill.Result

// noticeExpiredMsg clears the error notice whose id matches; stale timers
// from an earlier notice are ignored.
type noticeExpiredMsg int

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil

	case bindingsMsg:
		prevPort := m.selectedPort()

		m.bindings = msg
		m.table.SetRows(rowsFrom(msg))
		m.restoreSelection(prevPort)

		if len(msg) == 0 {
			m.statusMsg = "No processes listening on ports found (may require sudo)"
		} else {
			m.statusMsg = fmt.Sprintf("Found %d process(es) listening on ports", len(msg))
		}
		return m, nil

	case killResultMsg:
		res := kill.Result(msg)
		switch res.Outcome {
		case kill.OutcomeSucceeded:
			m.statusMsg = fmt.Sprintf("Terminated '%s' (PID %d)", res.ProcessName, res.PID)
			return m, m.refreshBindings()
		case kill.OutcomeAlreadyGone:
			m.statusMsg = fmt.Sprintf("Process %d no longer exists", res.PID)
			return m, m.refreshBindings()
		case kill.OutcomeDenied:
			m.noticeID++
			m.notice = fmt.Sprintf("Permission denied: cannot kill '%s' (PID %d)", res.ProcessName, res.PID)
			return m, m.expireNotice(m.noticeID)
		default:
			m.noticeID++
			m.notice = fmt.Sprintf("Error killing process: %s", res.Detail)
			return m, m.expireNotice(m.noticeID)
		}

	case noticeExpiredMsg:
		if int(msg) == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y", "Y", "enter":
				m.confirming = false
				target := m.target
				terminate := m.terminate
				return m, func() tea.Msg {
					return killResultMsg(terminate(target.PID, target.ProcessName))
				}
			case "n", "N", "esc":
				m.confirming = false
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			return m, m.refreshBindings()

		case "x":
			if len(m.bindings) == 0 {
				m.statusMsg = "No processes to kill"
				return m, nil
			}
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.bindings) {
				return m, nil
			}
			m.target = m.bindings[idx]
			m.confirming = true
			return m, nil
		}

		// j/k and the arrow keys are handled by the table's own keymap.
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m MainModel) expireNotice(id int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg(id)
	})
}
