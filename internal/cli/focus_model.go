package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type focusKeyMap struct {
	Done    key.Binding
	Break   key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultFocusKeys() focusKeyMap {
	return focusKeyMap{
		Done:    key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "finish current task")),
		Break:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "log a break")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k focusKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Break, k.Help, k.Quit}
}

func (k focusKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Done, k.Break}, {k.Refresh, k.Help, k.Quit}}
}

type focusTickMsg time.Time

type focusLoadedMsg struct {
	counters domain.DayCounters
	tasks    []*domain.PlannedTask
	nudges   []domain.Nudge
	at       time.Time
	err      error
}

type focusActionMsg struct {
	flash string
	err   error
}

// focusModel is the live focus view. It reloads day state and nudges on
// every tick and after each action.
type focusModel struct {
	app  *App
	keys focusKeyMap
	help help.Model

	counters domain.DayCounters
	tasks    []*domain.PlannedTask
	nudges   []domain.Nudge
	at       time.Time
	flash    string
	err      error
	loaded   bool
}

func newFocusModel(a *App) focusModel {
	return focusModel{app: a, keys: defaultFocusKeys(), help: help.New()}
}

func focusTick() tea.Cmd {
	return tea.Tick(focusPollInterval, func(t time.Time) tea.Msg { return focusTickMsg(t) })
}

func (m focusModel) load() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		ctx := context.Background()
		now := a.now()
		msg := focusLoadedMsg{at: now}
		if msg.counters, msg.err = a.Day.Counters(ctx); msg.err != nil {
			return msg
		}
		if msg.tasks, msg.err = a.Tasks.List(ctx, false); msg.err != nil {
			return msg
		}
		msg.nudges, msg.err = a.Nudges.Check(ctx, now, false)
		return msg
	}
}

func (m focusModel) Init() tea.Cmd {
	return tea.Batch(m.load(), focusTick())
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case focusTickMsg:
		return m, tea.Batch(m.load(), focusTick())

	case focusLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.counters, m.tasks, m.nudges, m.at = msg.counters, msg.tasks, msg.nudges, msg.at
		}
		return m, nil

	case focusActionMsg:
		m.err = msg.err
		if msg.err == nil {
			m.flash = msg.flash
		}
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		case key.Matches(msg, m.keys.Break):
			return m, m.takeBreak()
		case key.Matches(msg, m.keys.Done):
			if len(m.tasks) == 0 {
				return m, nil
			}
			return m, m.complete(m.tasks[0].ID)
		}
	}
	return m, nil
}

func (m focusModel) takeBreak() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		err := a.Day.TakeBreak(context.Background(), a.now())
		return focusActionMsg{flash: "Break logged. The timer starts fresh.", err: err}
	}
}

func (m focusModel) complete(id string) tea.Cmd {
	a := m.app
	return func() tea.Msg {
		res, err := a.Tasks.Complete(context.Background(), id)
		if err != nil {
			return focusActionMsg{err: err}
		}
		flash := "✓ " + res.Task.Title
		if res.Nudge != nil {
			flash = formatter.FormatNudge(*res.Nudge)
		}
		return focusActionMsg{flash: flash}
	}
}

func (m focusModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Focus"))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(formatter.Dim("Loading..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(focusSummary(m.counters.FocusMinutes(m.at), m.counters.MinutesSinceBreak(m.at)))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(formatter.StyleGreen.Render("All clear. Nothing left on the list."))
		b.WriteString("\n")
	} else {
		cur := m.tasks[0]
		fmt.Fprintf(&b, "Now:  %s %s %s\n", formatter.ColorDot(cur.Color), formatter.Bold(cur.Title),
			formatter.Dim(formatter.FormatMinutes(cur.DurationMinutes)))
		if len(m.tasks) > 1 {
			next := m.tasks[1]
			fmt.Fprintf(&b, "Next: %s %s\n", formatter.ColorDot(next.Color), formatter.Dim(next.Title))
		}
	}

	if len(m.nudges) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.FormatNudges(m.nudges))
	}
	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(m.flash)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleOrange.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
