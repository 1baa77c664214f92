// Package ui provides the interactive terminal surfaces for the CLI
package ui

import (
	"context"
	"fmt"
	"strings"

	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/history"
	"NavEngine/pkg/nav/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// transitionMsg carries one delivered transition into the bubbletea loop.
type transitionMsg store.TransitionRecord

// streamClosedMsg signals that the live stream is done.
type streamClosedMsg struct{}

const recentLimit = 8

// BrowserModel is the bubbletea model for the interactive navigation session.
type BrowserModel struct {
	engine *history.History
	live   *store.ChannelTransitionStream

	input    textinput.Model
	onSubmit func(string)

	addressHistory []string
	historyPos     int // -1 means "not browsing history"
	draft          string

	recent []store.TransitionRecord

	guardOn bool
	unblock func()

	// pendingDelta is a back/forward request waiting on the guard dialog.
	// 0 means no dialog is open.
	pendingDelta  int
	pendingPrompt string

	width    int
	quitting bool
}

// NewBrowserModel builds the session model. onSubmit is invoked with every
// address the user submits, before the engine navigates.
func NewBrowserModel(engine *history.History, live *store.ChannelTransitionStream, addressHistory []string, onSubmit func(string)) BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "/path/to/navigate"
	ti.Prompt = "address> "
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 60
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return BrowserModel{
		engine:         engine,
		live:           live,
		input:          ti,
		onSubmit:       onSubmit,
		addressHistory: addressHistory,
		historyPos:     -1,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForTransition())
}

// waitForTransition blocks on the live stream and feeds the result back as a
// message.
func (m BrowserModel) waitForTransition() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.live.Recv(context.Background())
		if err != nil {
			return streamClosedMsg{}
		}
		return transitionMsg(rec)
	}
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transitionMsg:
		m.recent = append(m.recent, store.TransitionRecord(msg))
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}
		return m, m.waitForTransition()

	case streamClosedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 20 {
			m.input.Width = msg.Width - 12
		}
		return m, nil

	case tea.KeyMsg:
		// The guard dialog swallows every key until answered.
		if m.pendingDelta != 0 {
			switch msg.String() {
			case "y", "Y", "enter":
				m.engine.Go(m.pendingDelta)
				m.pendingDelta = 0
			case "n", "N", "esc", "ctrl+c":
				m.pendingDelta = 0
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			if m.guardOn && m.unblock != nil {
				m.unblock()
			}
			return m, tea.Quit

		case "enter":
			val := strings.TrimSpace(m.input.Value())
			if val != "" {
				if m.onSubmit != nil {
					m.onSubmit(val)
				}
				m.engine.Push(val)
				m.rememberInput(val)
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+r":
			val := strings.TrimSpace(m.input.Value())
			if val != "" {
				if m.onSubmit != nil {
					m.onSubmit(val)
				}
				m.engine.Replace(val)
				m.rememberInput(val)
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+b":
			return m.requestGo(-1), nil

		case "ctrl+f":
			return m.requestGo(1), nil

		case "ctrl+g":
			if m.guardOn {
				if m.unblock != nil {
					m.unblock()
				}
				m.guardOn = false
			} else {
				m.unblock = m.engine.Block(history.MessagePrompt("Leave this page?"))
				m.guardOn = true
			}
			return m, nil

		case "ctrl+p":
			m.prevHistory()
			return m, nil

		case "ctrl+n":
			m.nextHistory()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// requestGo either navigates immediately or opens the guard dialog.
func (m BrowserModel) requestGo(delta int) BrowserModel {
	action := api.ActionPop
	if delta > 0 {
		action = api.ActionPush
	}
	if msg, ok := m.engine.PromptMessage(api.Location{}, action); ok {
		m.pendingDelta = delta
		m.pendingPrompt = msg
		return m
	}
	m.engine.Go(delta)
	return m
}

func (m *BrowserModel) rememberInput(val string) {
	m.addressHistory = append(m.addressHistory, val)
	m.historyPos = -1
}

func (m *BrowserModel) prevHistory() {
	if len(m.addressHistory) == 0 {
		return
	}
	if m.historyPos == -1 {
		m.draft = m.input.Value()
		m.historyPos = len(m.addressHistory) - 1
	} else if m.historyPos > 0 {
		m.historyPos--
	}
	m.input.SetValue(m.addressHistory[m.historyPos])
	m.input.CursorEnd()
}

func (m *BrowserModel) nextHistory() {
	if len(m.addressHistory) == 0 || m.historyPos == -1 {
		return
	}
	if m.historyPos < len(m.addressHistory)-1 {
		m.historyPos++
		m.input.SetValue(m.addressHistory[m.historyPos])
		m.input.CursorEnd()
		return
	}
	m.historyPos = -1
	m.input.SetValue(m.draft)
	m.input.CursorEnd()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hrefStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	guardStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)
)

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	loc := m.engine.Location()
	b.WriteString(titleStyle.Render("Nav Engine"))
	b.WriteString("\n")
	b.WriteString(hrefStyle.Render(m.engine.CreateHref(loc)))
	b.WriteString("  ")
	b.WriteString(actionBadge(m.engine.Action()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("key=%s  entries=%d", loc.Key, m.engine.Length())))
	if m.guardOn {
		b.WriteString("  ")
		b.WriteString(guardStyle.Render("⛔ guard armed"))
	}
	b.WriteString("\n\n")

	if len(m.recent) > 0 {
		for _, rec := range m.recent {
			b.WriteString(FormatTransition(rec))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.pendingDelta != 0 {
		b.WriteString(dialogStyle.Render(m.pendingPrompt + "  (y/n)"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter Push | Ctrl+R Replace | Ctrl+B Back | Ctrl+F Forward | Ctrl+G Guard | Ctrl+P/N History | Ctrl+C Quit"))

	return b.String()
}
