package ui

import (
	"fmt"

	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/store"

	"github.com/charmbracelet/lipgloss"
)

var (
	pushBadge    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	popBadge     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	replaceBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	pathText     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimText      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// actionBadge renders a colored, width-aligned action label.
func actionBadge(action api.Action) string {
	label := fmt.Sprintf("%-7s", action)
	switch action {
	case api.ActionPush:
		return pushBadge.Render(label)
	case api.ActionPop:
		return popBadge.Render(label)
	case api.ActionReplace:
		return replaceBadge.Render(label)
	default:
		return label
	}
}

// FormatTransition renders one transition record as a single line.
func FormatTransition(rec store.TransitionRecord) string {
	return fmt.Sprintf("%s %s %s %s %s",
		actionBadge(rec.Action),
		pathText.Render(rec.From.Path),
		dimText.Render("→"),
		pathText.Render(rec.To.Path),
		dimText.Render(fmt.Sprintf("key=%s→%s", rec.From.Key, rec.To.Key)),
	)
}
