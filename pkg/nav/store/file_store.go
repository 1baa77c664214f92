package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"NavEngine/pkg/nav/api"
)

// RecordFilename is the fixed well-known name of the durable key record,
// shared per workspace. The engine never deletes it.
const RecordFilename = "navigation_key.json"

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// FileRecordStore
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// recordWrapper wraps StoreRecord with a version for future migration.
type recordWrapper struct {
	Version int             `json:"version"`
	Record  api.StoreRecord `json:"record"`
}

// FileRecordStore implements RecordStore as a single JSON file.
type FileRecordStore struct {
	path string
}

// NewFileRecordStore creates a record store under workspaceRoot.
func NewFileRecordStore(workspaceRoot string) (*FileRecordStore, error) {
	if err := os.MkdirAll(workspaceRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}
	return &FileRecordStore{path: filepath.Join(workspaceRoot, RecordFilename)}, nil
}

// Load reads the record. A missing or corrupt file reads as api.ErrNoRecord:
// an unusable record and an absent one call for the same recovery, reseeding
// from the live key.
func (s *FileRecordStore) Load() (api.StoreRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return api.StoreRecord{}, api.ErrNoRecord
	}
	if err != nil {
		return api.StoreRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	var wrapper recordWrapper
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return api.StoreRecord{}, api.ErrNoRecord
	}
	if wrapper.Record.Key == "" {
		return api.StoreRecord{}, api.ErrNoRecord
	}
	return wrapper.Record, nil
}

// Save overwrites the record atomically (temp file + rename).
func (s *FileRecordStore) Save(rec api.StoreRecord) error {
	data, err := json.MarshalIndent(recordWrapper{Version: 1, Record: rec}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Path returns the record file path.
func (s *FileRecordStore) Path() string {
	return s.path
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// MemoryRecordStore
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// MemoryRecordStore implements RecordStore in memory, for tests and for
// restricted contexts without durable storage.
type MemoryRecordStore struct {
	rec *api.StoreRecord
}

// NewMemoryRecordStore creates an empty in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

func (s *MemoryRecordStore) Load() (api.StoreRecord, error) {
	if s.rec == nil {
		return api.StoreRecord{}, api.ErrNoRecord
	}
	return *s.rec, nil
}

func (s *MemoryRecordStore) Save(rec api.StoreRecord) error {
	s.rec = &rec
	return nil
}
