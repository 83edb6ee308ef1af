package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"chronicle/demo/client"
)

// generateTimeline creates a command that runs the pipeline for query.
func generateTimeline(c *client.Client, query string, strategy string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.GenerateTimeline(context.Background(), query, 0, strategy)
		return TimelineReadyMsg{Result: result, Err: err}
	}
}
