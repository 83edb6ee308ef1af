package tui

import "chronicle/types"

// Messages for the tea program

// TimelineReadyMsg is sent when the API finishes a timeline run.
type TimelineReadyMsg struct {
	Result *types.TimelineResult
	Err    error
}
