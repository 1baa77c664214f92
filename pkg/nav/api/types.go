// Package api defines the value types and host contract for the navigation
// history engine. Everything here is serializable; snapshots are immutable
// value objects replaced atomically on every transition.
package api

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Action
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Action classifies how the current transition relates to the previous one.
type Action string

const (
	// ActionPop is a move to an entry the engine minted earlier (backward, or
	// forward through existing entries with a smaller key).
	ActionPop Action = "POP"

	// ActionPush is a move to an entry with a key greater than the last known
	// key. Forward navigation through existing entries also classifies as
	// PUSH; consumers depend on this exact mapping.
	ActionPush Action = "PUSH"

	// ActionReplace is a move that keeps the current key.
	ActionReplace Action = "REPLACE"
)

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Addressing Mode
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Mode selects the addressing scheme used for href assembly.
type Mode string

const (
	// ModeFragment prefixes hrefs with the fragment marker ("#/a").
	ModeFragment Mode = "fragment"

	// ModePath assembles plain paths, re-adding the configured basename.
	ModePath Mode = "path"
)

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Location
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Location describes a navigable address. Path excludes the basename; Key is
// an opaque numeric-valued string correlating the location to a native stack
// entry; State is an optional payload carried across the transition.
//
// A Location is built fresh for every transition and never mutated.
type Location struct {
	Path  string         `json:"path"`
	Key   string         `json:"key"`
	State map[string]any `json:"state,omitempty"`
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Transition
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Transition is the payload delivered to listeners on every state change.
type Transition struct {
	From   Location `json:"from"`
	To     Location `json:"to"`
	Action Action   `json:"action"`
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Durable Record
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// StoreRecord is the single durable record kept in host storage. It exists
// only to detect divergence between the durable slot and the live navigation
// key (reload in another context, external tampering).
type StoreRecord struct {
	Key string `json:"key"`
}
