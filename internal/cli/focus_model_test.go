package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/teatest"
	"github.com/alexanderramin/braindump/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFocusDriver(t *testing.T, env *testEnv) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newFocusModel(env.app), teatest.WithSize(100, 30))
	d.DrainInit()
	return d
}

func TestFocusModel_ShowsCurrentAndNextTask(t *testing.T) {
	env := testApp(t, testutil.AITasksJSON(3, domain.ColorGreen))
	_, err := executeCmd(t, env.app, "dump", "stuff")
	require.NoError(t, err)
	_, err = executeCmd(t, env.app, "focus", "start")
	require.NoError(t, err)

	d := newFocusDriver(t, env)
	view := d.View()
	assert.Contains(t, view, "FOCUS")
	assert.Contains(t, view, "Now:")
	assert.Contains(t, view, "Task 1")
	assert.Contains(t, view, "Next:")
	assert.Contains(t, view, "Task 2")
	assert.Contains(t, view, "finish current task")
}

func TestFocusModel_CompleteAdvancesAndCelebrates(t *testing.T) {
	env := testApp(t, testutil.AITasksJSON(2, domain.ColorGreen))
	_, err := executeCmd(t, env.app, "dump", "stuff")
	require.NoError(t, err)

	d := newFocusDriver(t, env)
	d.PressKey('d')

	view := d.View()
	assert.Contains(t, view, "First task done")
	assert.Contains(t, view, "Now:")
	assert.Contains(t, view, "Task 2")

	d.PressEnter()
	assert.Contains(t, d.View(), "All clear")
	assert.Contains(t, d.View(), "Everything on today's list is done")

	// Nothing left to complete.
	d.PressKey('d')
	assert.Contains(t, d.View(), "All clear")
}

func TestFocusModel_TickPicksUpNudges(t *testing.T) {
	env := testApp(t, "[]")
	_, err := executeCmd(t, env.app, "focus", "start")
	require.NoError(t, err)

	d := newFocusDriver(t, env)
	assert.NotContains(t, d.View(), "an hour since your last break")

	env.advance(62 * time.Minute)
	d.Send(focusTickMsg(*env.clock))
	assert.Contains(t, d.View(), "an hour since your last break")

	d.PressKey('b')
	view := d.View()
	assert.Contains(t, view, "Break logged")
	assert.NotContains(t, view, "an hour since your last break")
}

func TestFocusModel_HelpAndQuit(t *testing.T) {
	env := testApp(t, "[]")
	d := newFocusDriver(t, env)

	assert.NotContains(t, d.View(), "refresh")
	d.PressKey('?')
	assert.Contains(t, d.View(), "refresh")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestFocusModel_LoadingBeforeInit(t *testing.T) {
	env := testApp(t, "[]")
	m := newFocusModel(env.app)
	assert.Contains(t, m.View(), "Loading")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.IsType(t, focusModel{}, updated)
}
