package history

import "NavEngine/pkg/nav/api"

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Guard Prompt
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Prompt produces the confirmation message the host shows before letting a
// navigation proceed. A guard never prevents a navigation programmatically;
// it only arms the host's own dialog.
type Prompt func(to api.Location, action api.Action) string

// MessagePrompt returns a Prompt with a fixed message, the boolean-style
// guard from the JS history APIs.
func MessagePrompt(msg string) Prompt {
	return func(api.Location, api.Action) string { return msg }
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Transition Manager
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// TransitionManager holds the ordered listener registry and the single guard
// slot. It is independent of the history engine and performs no host calls.
//
// Like the engine, it expects all calls from one goroutine.
type TransitionManager struct {
	listeners []*listenerEntry
	prompt    Prompt
	promptSeq int
}

type listenerEntry struct {
	fn func(api.Transition)
}

// NewTransitionManager creates an empty manager.
func NewTransitionManager() *TransitionManager {
	return &TransitionManager{}
}

// AppendListener registers fn at the end of the notification order and
// returns its unlisten function. Unlisten removes exactly this registration;
// calling it twice is a no-op.
func (m *TransitionManager) AppendListener(fn func(api.Transition)) func() {
	entry := &listenerEntry{fn: fn}
	m.listeners = append(m.listeners, entry)
	return func() {
		for i, l := range m.listeners {
			if l == entry {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every live listener synchronously, in registration order.
// The listener list is snapshotted first: listeners added or removed during
// the pass do not affect the in-flight notification.
func (m *TransitionManager) Notify(t api.Transition) {
	snapshot := make([]*listenerEntry, len(m.listeners))
	copy(snapshot, m.listeners)
	for _, l := range snapshot {
		l.fn(t)
	}
}

// ListenerCount reports the number of live listeners.
func (m *TransitionManager) ListenerCount() int {
	return len(m.listeners)
}

// SetPrompt records prompt as the active guard, silently replacing any
// previous one. The returned clear function disarms the guard only while it
// is still the current one, and reports whether it did; a stale clear after
// a newer SetPrompt has no effect.
func (m *TransitionManager) SetPrompt(prompt Prompt) func() bool {
	m.prompt = prompt
	m.promptSeq++
	seq := m.promptSeq
	return func() bool {
		if m.promptSeq != seq || m.prompt == nil {
			return false
		}
		m.prompt = nil
		return true
	}
}

// Prompt returns the active guard, if any.
func (m *TransitionManager) Prompt() (Prompt, bool) {
	if m.prompt == nil {
		return nil, false
	}
	return m.prompt, true
}
