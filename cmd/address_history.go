package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// AddressEntry represents a single address-bar input
type AddressEntry struct {
	Timestamp time.Time `json:"ts"`
	Path      string    `json:"path"`
}

// AddressHistory manages the persistence of address-bar inputs
type AddressHistory struct {
	path string
	mu   sync.Mutex
}

// NewAddressHistory creates an address history pointing to workspace/history/addresses.jsonl
func NewAddressHistory(workspaceRoot string) (*AddressHistory, error) {
	dir := filepath.Join(workspaceRoot, "history")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	return &AddressHistory{
		path: filepath.Join(dir, "addresses.jsonl"),
	}, nil
}

// Load reads all history entries and returns valid paths as a string slice
func (h *AddressHistory) Load() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No history yet
		}
		return nil, err
	}

	var paths []string
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry AddressEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue // Skip malformed lines
		}
		if entry.Path != "" {
			paths = append(paths, entry.Path)
		}
	}
	return paths, nil
}

// Append adds a new path to the history file
func (h *AddressHistory) Append(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := AddressEntry{
		Timestamp: time.Now(),
		Path:      path,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
