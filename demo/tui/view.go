package tui

import (
	"fmt"
	"strings"

	"chronicle/summarize"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Chronicle Timeline Demo"))
	b.WriteString("\n\n")

	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.State == StateInput || m.State == StateLoading {
		prompt := fmt.Sprintf("Query: %s", m.Query)
		if m.State == StateInput {
			prompt += "_"
		}
		b.WriteString(prompt)
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Summarizer: " + m.strategyLabel()))
		b.WriteString("\n\n")
	}

	if m.State == StateComplete && m.Result != nil {
		b.WriteString(BoxStyle.Render(m.formatResult()))
		b.WriteString("\n\n")
	}

	switch m.State {
	case StateInput:
		b.WriteString(InfoStyle.Render("Enter to generate | Esc or Ctrl+C to quit"))
	case StateComplete, StateError:
		b.WriteString(InfoStyle.Render("Press 'n' for a new query | 'q' to quit"))
	default:
		b.WriteString(InfoStyle.Render("Esc or Ctrl+C to quit"))
	}

	return b.String()
}

func (m Model) strategyLabel() string {
	if m.Strategy == summarize.StrategyLocal {
		return summarize.StrategyLocal
	}
	return summarize.StrategyLLM
}

// formatResult renders the timeline result for display
func (m Model) formatResult() string {
	res := m.Result
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Timeline: " + res.Query))
	b.WriteString("\n\n")

	if len(res.Milestones) == 0 {
		b.WriteString(InfoStyle.Render("No dated milestones found."))
		b.WriteString("\n")
	}
	for _, ms := range res.Milestones {
		b.WriteString(DateStyle.Render(ms.Date))
		b.WriteString("  " + ms.Headline + "\n")
		if ms.Description != "" {
			b.WriteString(InfoStyle.Render("  " + ms.Description))
			b.WriteString("\n")
		}
		if ms.SourceName != "" {
			b.WriteString(InfoStyle.Render("  - " + ms.SourceName))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if res.Summary != "" {
		b.WriteString(HighlightStyle.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(res.Summary)
		b.WriteString("\n\n")
	}

	if len(res.SourceCounts) > 0 {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Articles: %d | Sources:", len(res.Articles))))
		for name, n := range res.SourceCounts {
			b.WriteString(InfoStyle.Render(fmt.Sprintf(" %s (%d)", name, n)))
		}
		b.WriteString("\n")
	}

	return b.String()
}
