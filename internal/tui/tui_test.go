package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pui-dev/pui/internal/kill"
	"github.com/pui-dev/pui/internal/ports"
	"github.com/pui-dev/pui/pkg/model"
)

type termRecorder struct {
	calls   []int
	outcome kill.Outcome
	detail  string
}

func (tr *termRecorder) terminate(pid int, name string) kill.Result {
	tr.calls = append(tr.calls, pid)
	return kill.Result{Outcome: tr.outcome, PID: pid, ProcessName: name, Detail: tr.detail}
}

func emptyResolver() *ports.Resolver {
	return ports.NewResolverWithLookup(stubBackend{}, nil)
}

type stubBackend struct{}

func (stubBackend) Name() string                    { return "stub" }
func (stubBackend) Entries() ([]ports.Entry, error) { return nil, nil }

func testModel(t *testing.T, bindings []model.PortBinding, rec *termRecorder) MainModel {
	t.Helper()
	m := InitialModel(emptyResolver(), "test")
	m.terminate = rec.terminate

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(MainModel)
	updated, _ = m.Update(bindingsMsg(bindings))
	return updated.(MainModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var sample = []model.PortBinding{
	{Port: 80, PID: 100, ProcessName: "nginx", State: model.StateListen},
	{Port: 5432, PID: 200, ProcessName: "postgres", State: model.StateListen},
}

func TestDeclinedConfirmDoesNotTerminate(t *testing.T) {
	rec := &termRecorder{outcome: kill.OutcomeSucceeded}
	m := testModel(t, sample, rec)

	updated, _ := m.Update(keyRunes("x"))
	m = updated.(MainModel)
	assert.True(t, m.confirming)

	updated, cmd := m.Update(keyRunes("n"))
	m = updated.(MainModel)
	assert.False(t, m.confirming)
	assert.Nil(t, cmd)
	assert.Empty(t, rec.calls)
}

func TestAcceptedConfirmTerminatesSelected(t *testing.T) {
	rec := &termRecorder{outcome: kill.OutcomeSucceeded}
	m := testModel(t, sample, rec)

	updated, _ := m.Update(keyRunes("x"))
	m = updated.(MainModel)
	require.True(t, m.confirming)
	assert.Equal(t, 80, m.target.Port)

	updated, cmd := m.Update(keyRunes("y"))
	m = updated.(MainModel)
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(killResultMsg)
	require.True(t, ok)
	assert.Equal(t, []int{100}, rec.calls)
	assert.Equal(t, kill.OutcomeSucceeded, kill.Result(res).Outcome)
}

func TestKillOnEmptyInventoryIsNoop(t *testing.T) {
	rec := &termRecorder{outcome: kill.OutcomeSucceeded}
	m := testModel(t, nil, rec)

	updated, cmd := m.Update(keyRunes("x"))
	m = updated.(MainModel)
	assert.False(t, m.confirming)
	assert.Nil(t, cmd)
	assert.Empty(t, rec.calls)
	assert.Equal(t, "No processes to kill", m.statusMsg)
}

func TestBindingsMsgSetsStatus(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)
	assert.Equal(t, "Found 2 process(es) listening on ports", m.statusMsg)

	updated, _ := m.Update(bindingsMsg(nil))
	m = updated.(MainModel)
	assert.Equal(t, "No processes listening on ports found (may require sudo)", m.statusMsg)
}

func TestSelectionSurvivesRefresh(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(MainModel)
	assert.Equal(t, 1, m.table.Cursor())

	refreshed := []model.PortBinding{
		{Port: 22, PID: 50, ProcessName: "sshd", State: model.StateListen},
		{Port: 5432, PID: 200, ProcessName: "postgres", State: model.StateListen},
	}
	updated, _ = m.Update(bindingsMsg(refreshed))
	m = updated.(MainModel)
	assert.Equal(t, 1, m.table.Cursor(), "cursor should follow port 5432")
}

func TestSucceededResultRefreshes(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	updated, cmd := m.Update(killResultMsg(kill.Result{
		Outcome: kill.OutcomeSucceeded, PID: 100, ProcessName: "nginx",
	}))
	m = updated.(MainModel)
	assert.Equal(t, "Terminated 'nginx' (PID 100)", m.statusMsg)
	require.NotNil(t, cmd)
	_, ok := cmd().(bindingsMsg)
	assert.True(t, ok, "succeeded outcome should trigger a refresh")
}

func TestAlreadyGoneResultRefreshes(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	updated, cmd := m.Update(killResultMsg(kill.Result{
		Outcome: kill.OutcomeAlreadyGone, PID: 100, ProcessName: "nginx",
	}))
	m = updated.(MainModel)
	assert.Equal(t, "Process 100 no longer exists", m.statusMsg)
	require.NotNil(t, cmd)
	_, ok := cmd().(bindingsMsg)
	assert.True(t, ok)
}

func TestDeniedResultShowsNotice(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	updated, cmd := m.Update(killResultMsg(kill.Result{
		Outcome: kill.OutcomeDenied, PID: 100, ProcessName: "nginx", Detail: "operation not permitted",
	}))
	m = updated.(MainModel)
	assert.Equal(t, "Permission denied: cannot kill 'nginx' (PID 100)", m.notice)
	require.NotNil(t, cmd, "denied outcome should arm the notice timer")

	// A stale expiry must not clear a newer notice.
	staleID := m.noticeID
	updated, _ = m.Update(killResultMsg(kill.Result{
		Outcome: kill.OutcomeUnexpected, PID: 200, ProcessName: "postgres", Detail: "boom",
	}))
	m = updated.(MainModel)
	assert.Equal(t, "Error killing process: boom", m.notice)

	updated, _ = m.Update(noticeExpiredMsg(staleID))
	m = updated.(MainModel)
	assert.Equal(t, "Error killing process: boom", m.notice)

	updated, _ = m.Update(noticeExpiredMsg(m.noticeID))
	m = updated.(MainModel)
	assert.Empty(t, m.notice)
}

func TestViewShowsRowsAndConfirmPrompt(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	view := stripAnsi(m.View())
	assert.Contains(t, view, "nginx")
	assert.Contains(t, view, "5432")
	assert.Contains(t, view, "LISTEN")

	updated, _ := m.Update(keyRunes("x"))
	m = updated.(MainModel)
	view = stripAnsi(m.View())
	assert.Contains(t, view, "Kill process 'nginx' (PID 100) on port 80?")
}

func TestQuitKeys(t *testing.T) {
	rec := &termRecorder{}
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		m := testModel(t, sample, rec)
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = keyRunes(key)
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q should quit", key)
	}
	assert.Empty(t, rec.calls)
}

func TestRefreshKeyResolves(t *testing.T) {
	rec := &termRecorder{}
	m := testModel(t, sample, rec)

	resolved := false
	m.resolve = func() []model.PortBinding {
		resolved = true
		return sample
	}

	_, cmd := m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.True(t, resolved)
	assert.Len(t, msg.(bindingsMsg), 2)
}
