package middleware

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Logged wraps a bubbletea model so every update cycle is logged with the
// message kind and how long the update took. Key presses are logged by name;
// other messages by type.
func Logged(next tea.Model) tea.Model {
	return loggedModel{next: next}
}

type loggedModel struct {
	next tea.Model
}

func (m loggedModel) Init() tea.Cmd {
	slog.Info("Session started", "model", fmt.Sprintf("%T", m.next))
	return m.next.Init()
}

func (m loggedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	start := time.Now()
	next, cmd := m.next.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		slog.Debug("Update",
			"key", msg.String(),
			"duration_us", time.Since(start).Microseconds(),
		)
	default:
		slog.Debug("Update",
			"msg_type", fmt.Sprintf("%T", msg),
			"duration_us", time.Since(start).Microseconds(),
		)
	}

	return loggedModel{next: next}, cmd
}

func (m loggedModel) View() string {
	return m.next.View()
}

// Unwrap returns the wrapped model.
func Unwrap(m tea.Model) tea.Model {
	if lm, ok := m.(loggedModel); ok {
		return lm.next
	}
	return m
}
