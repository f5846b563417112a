package ui

import (
	"notepad/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg contains the result of the shortcut pager
type helpPagerMsg struct {
	err error
}

// launchMsg reports the result of starting a browser or a new window
type launchMsg struct {
	what string
	err  error
}

// clearStatusMsg clears a transient status message. Only the message
// with the matching sequence number is cleared.
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
