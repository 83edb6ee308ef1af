package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"chronicle/summarize"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TimelineReadyMsg:
		return m.handleTimelineReady(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.State {
	case StateInput:
		return m.handleInputKey(msg)
	case StateComplete, StateError:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "n":
			m.State = StateInput
			m.Query = ""
			m.Result = nil
			m.Err = nil
		}
	}
	return m, nil
}

// handleInputKey edits the query line and submits on enter.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.Query)
		if query == "" {
			return m, nil
		}
		m.State = StateLoading
		return m, generateTimeline(m.Client, query, m.Strategy)
	case tea.KeyBackspace:
		if len(m.Query) > 0 {
			runes := []rune(m.Query)
			m.Query = string(runes[:len(runes)-1])
		}
	case tea.KeyTab:
		if m.Strategy == summarize.StrategyLocal {
			m.Strategy = summarize.StrategyLLM
		} else {
			m.Strategy = summarize.StrategyLocal
		}
	case tea.KeySpace:
		m.Query += " "
	case tea.KeyRunes:
		m.Query += string(msg.Runes)
	}
	return m, nil
}

// handleTimelineReady processes the pipeline result
func (m Model) handleTimelineReady(msg TimelineReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Result
	m.State = StateComplete
	return m, nil
}
