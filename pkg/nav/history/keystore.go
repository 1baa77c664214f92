package history

import (
	"errors"

	"NavEngine/pkg/logger"
	"NavEngine/pkg/nav/api"
)

// keyStore reconciles the durable record against the live navigation key and
// keeps it in sync after every transition. When host storage errors it
// degrades to an in-memory key for the rest of the session; persistence is
// lost but navigation keeps working.
type keyStore struct {
	adapter api.PlatformAdapter
	memOnly bool
	lastKey string
}

// newKeyStore loads the durable record and repairs any divergence from the
// live key. A mismatch (including first run) is recoverable, not an error:
// the record is reset to the live key with a warning.
func newKeyStore(adapter api.PlatformAdapter, liveKey string) *keyStore {
	s := &keyStore{adapter: adapter}

	rec, err := adapter.Load()
	switch {
	case errors.Is(err, api.ErrNoRecord):
		logger.Warn("History", "no durable record, seeding from live key",
			map[string]any{"key": liveKey})
	case err != nil:
		// Restricted storage context. Degrade silently to in-memory.
		s.memOnly = true
		s.lastKey = liveKey
		return s
	case rec.Key != liveKey:
		logger.Warn("History", "durable record diverged from live key, resetting",
			map[string]any{"stored": rec.Key, "live": liveKey})
	default:
		s.lastKey = liveKey
		return s
	}

	s.save(liveKey)
	return s
}

// save serializes {key} to durable storage. Re-saving the current key is a
// no-op; a write failure flips the store to in-memory for good.
func (s *keyStore) save(key string) {
	if key == s.lastKey {
		return
	}
	s.lastKey = key
	if s.memOnly {
		return
	}
	if err := s.adapter.Persist(api.StoreRecord{Key: key}); err != nil {
		s.memOnly = true
	}
}
