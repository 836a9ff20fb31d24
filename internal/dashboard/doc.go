// Package dashboard runs the refresh loop that ties metrics, containers,
// panels and the renderer together.
//
// # State Machine
//
// The loop has two states, Running and Terminating. The quit command (q or
// Ctrl+C) or a cancelled context moves it to Terminating, after which no
// more samples or container queries are issued and the renderer is closed.
//
// # Cadence
//
// Two deadlines are tracked independently:
//
//	nextRender  - full sample + rebuild + repaint (default every 2s)
//	nextPoll    - check for one pending key (default every 100ms)
//
// A single timer is armed for whichever comes first. A key that changes
// the display (m toggles the process sort) rebuilds immediately and pushes
// nextRender out by a full interval, so one wake never paints twice.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	m           - Toggle process sort between CPU and memory
package dashboard
