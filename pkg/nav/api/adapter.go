package api

import "errors"

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Native Entry
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// Entry is a native navigation-stack entry as the host sees it. Path is the
// host-addressable path (basename included, when one is configured); Key is
// the engine-minted key embedded in the entry, empty when the transition was
// triggered outside the engine.
type Entry struct {
	Path  string         `json:"path"`
	Key   string         `json:"key"`
	State map[string]any `json:"state,omitempty"`
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Platform Adapter
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// PlatformAdapter is the only boundary to host facilities: the native
// navigation stack and the single durable-storage slot. The engine depends
// exclusively on this interface, so tests and demo hosts inject fakes.
//
// PushEntry, ReplaceEntry and CurrentEntry are synchronous. GoDelta is
// fire-and-forget: the result, if any, arrives later through the Subscribe
// callback; navigating past the stack edge delivers nothing at all.
type PlatformAdapter interface {
	// CurrentEntry returns the native entry the user is currently viewing.
	CurrentEntry() Entry

	// PushEntry appends a new native entry and makes it current. It must not
	// invoke the Subscribe callback; the caller already knows.
	PushEntry(e Entry)

	// ReplaceEntry overwrites the current native entry in place, without
	// invoking the Subscribe callback.
	ReplaceEntry(e Entry)

	// GoDelta issues a native relative navigation and returns immediately.
	GoDelta(delta int)

	// StackLen reports the native stack length.
	StackLen() int

	// Subscribe registers the single navigation-changed callback and returns
	// a cancel function. The callback receives the entry now current.
	Subscribe(onChange func(Entry)) (cancel func())

	// Persist writes the durable record to the host storage slot.
	Persist(rec StoreRecord) error

	// Load reads the durable record. ErrNoRecord means the slot is empty.
	Load() (StoreRecord, error)
}

// ErrNoRecord is returned by Load when the durable slot holds no usable
// record yet (first run, or a corrupt slot).
var ErrNoRecord = errors.New("no durable record")
