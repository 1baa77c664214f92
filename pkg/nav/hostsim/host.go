// Package hostsim provides a deterministic in-memory host: a native
// navigation stack plus durable slot implementing api.PlatformAdapter. The
// engine tests and the demo CLI run against it.
package hostsim

import (
	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/pathutil"
	"NavEngine/pkg/nav/store"
)

// Host simulates a native navigation stack with a cursor. Like the engine it
// expects all calls from one goroutine; Subscribe callbacks fire
// synchronously from the navigation call.
type Host struct {
	entries []api.Entry
	idx     int
	records store.RecordStore

	subs      map[int]func(api.Entry)
	nextSubID int
}

// NewHost creates a host whose stack holds a single keyless entry at
// initialPath. A nil records store gets an in-memory one.
func NewHost(initialPath string, records store.RecordStore) *Host {
	if records == nil {
		records = store.NewMemoryRecordStore()
	}
	return &Host{
		entries: []api.Entry{{Path: pathutil.EnsureLeadingSlash(initialPath)}},
		records: records,
		subs:    make(map[int]func(api.Entry)),
	}
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// PlatformAdapter
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

func (h *Host) CurrentEntry() api.Entry {
	return h.entries[h.idx]
}

// PushEntry appends e after the cursor, discarding any forward entries, and
// makes it current. No notification: pushes originate from the engine.
func (h *Host) PushEntry(e api.Entry) {
	h.entries = append(h.entries[:h.idx+1], e)
	h.idx++
}

// ReplaceEntry overwrites the current entry. No notification.
func (h *Host) ReplaceEntry(e api.Entry) {
	h.entries[h.idx] = e
}

// GoDelta moves the cursor by delta and notifies subscribers. Past the stack
// edge nothing moves and nothing is delivered. GoDelta(0) redelivers the
// current entry, the host equivalent of a reload.
func (h *Host) GoDelta(delta int) {
	target := h.idx + delta
	if target < 0 || target >= len(h.entries) {
		return
	}
	h.idx = target
	h.notify()
}

func (h *Host) StackLen() int {
	return len(h.entries)
}

// Subscribe registers onChange for navigation-changed notifications.
func (h *Host) Subscribe(onChange func(api.Entry)) (cancel func()) {
	id := h.nextSubID
	h.nextSubID++
	h.subs[id] = onChange
	return func() {
		delete(h.subs, id)
	}
}

func (h *Host) Persist(rec api.StoreRecord) error {
	return h.records.Save(rec)
}

func (h *Host) Load() (api.StoreRecord, error) {
	return h.records.Load()
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Host-Originated Navigation
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// NavigateKeyless simulates a navigation triggered outside the engine: a new
// keyless entry is pushed and subscribers are notified. The engine is
// expected to repair the missing key.
func (h *Host) NavigateKeyless(path string) {
	h.entries = append(h.entries[:h.idx+1], api.Entry{Path: pathutil.EnsureLeadingSlash(path)})
	h.idx++
	h.notify()
}

// SubscriberCount reports active subscriptions. Tests assert the engine's
// reference counting through it.
func (h *Host) SubscriberCount() int {
	return len(h.subs)
}

func (h *Host) notify() {
	current := h.entries[h.idx]
	for _, fn := range h.subs {
		fn(current)
	}
}
