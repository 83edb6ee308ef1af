package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"chronicle/demo/client"
	"chronicle/types"
)

// State represents the application state machine
type State string

const (
	StateInput    State = "input"
	StateLoading  State = "loading"
	StateComplete State = "complete"
	StateError    State = "error"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *client.Client

	State    State
	Query    string
	Strategy string
	Result   *types.TimelineResult
	Err      error
}

// NewModel creates a new TUI model
func NewModel(apiURL string) Model {
	return Model{
		Client: client.NewClient(apiURL),
		State:  StateInput,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateInput:
		return HighlightStyle.Render("Type a news topic and press Enter") + "\n\n" +
			InfoStyle.Render("Tab toggles the summarizer (llm/local)")
	case StateLoading:
		return StatusStyle.Render("Aggregating articles and building the timeline...")
	case StateComplete:
		return HighlightStyle.Render("Timeline ready")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("Error: " + errMsg)
	default:
		return ""
	}
}
