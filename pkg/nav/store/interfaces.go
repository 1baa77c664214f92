// Package store provides durable persistence for the navigation engine: the
// single key record slot and an append-only transition log.
package store

import (
	"context"
	"errors"
	"time"

	"NavEngine/pkg/nav/api"
)

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Record Store Interface
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// RecordStore is a host's durable slot for the navigation key record. Hosts
// compose one to implement the adapter's Persist/Load capabilities.
type RecordStore interface {
	// Load reads the record. api.ErrNoRecord means the slot is empty or
	// unusable.
	Load() (api.StoreRecord, error)

	// Save overwrites the record. Must be synchronous and idempotent.
	Save(rec api.StoreRecord) error
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Transition Log Interface
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// TransitionRecord is one logged transition.
type TransitionRecord struct {
	Version int          `json:"version"`
	Seq     int64        `json:"seq"`
	Ts      time.Time    `json:"ts"`
	Action  api.Action   `json:"action"`
	From    api.Location `json:"from"`
	To      api.Location `json:"to"`
}

// TransitionStream yields logged transitions in order.
type TransitionStream interface {
	// Recv returns the next record. io.EOF indicates stream end.
	Recv(ctx context.Context) (TransitionRecord, error)

	// Close releases stream resources.
	Close() error
}

// TransitionLog is an append-only log of transitions for auditing and replay.
type TransitionLog interface {
	// Append adds a record to the log.
	Append(ctx context.Context, rec TransitionRecord) error

	// Stream returns a stream over the logged records.
	Stream(ctx context.Context) (TransitionStream, error)
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// Standard Errors
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// ErrLogClosed is returned by Send on a closed stream.
var ErrLogClosed = errors.New("transition log is closed")
