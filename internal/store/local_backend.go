package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const defaultSnapshotPath = "stratus/snapshot.json"

// localBackend persists snapshots as a JSON file on disk.
type localBackend struct {
	path string
}

func newLocalBackend(path string) *localBackend {
	if path == "" {
		path = defaultSnapshotPath
	}
	return &localBackend{path: path}
}

func (b *localBackend) Load(_ context.Context) (*Snapshot, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		// A missing file means a fresh deployment.
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", b.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", b.path, err)
	}
	return &snap, nil
}

func (b *localBackend) Save(_ context.Context, snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Write to a sibling temp file and rename so readers never observe a
	// half-written snapshot.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file %s: %w", b.path, err)
	}
	return nil
}
