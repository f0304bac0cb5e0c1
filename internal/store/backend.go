package store

import (
	"context"
	"fmt"
)

// Backend persists store snapshots between runs.
type Backend interface {
	// Load reads the last saved snapshot. A backend with nothing saved
	// yet returns an empty snapshot, not an error.
	Load(ctx context.Context) (*Snapshot, error)

	// Save writes the snapshot, replacing any previous one.
	Save(ctx context.Context, snap *Snapshot) error
}

// BackendConfig selects and configures a snapshot backend.
type BackendConfig struct {
	Type    string `json:"type" yaml:"type"` // "local" or "s3"
	Path    string `json:"path" yaml:"path"`
	Bucket  string `json:"bucket" yaml:"bucket"`
	Key     string `json:"key" yaml:"key"`
	Region  string `json:"region" yaml:"region"`
	Profile string `json:"profile" yaml:"profile"`
	Encrypt bool   `json:"encrypt" yaml:"encrypt"`
}

// NewBackend creates a snapshot backend from configuration.
func NewBackend(cfg BackendConfig) (Backend, error) {
	switch cfg.Type {
	case "local", "":
		return newLocalBackend(cfg.Path), nil
	case "s3":
		return newS3Backend(cfg)
	default:
		return nil, fmt.Errorf("unknown snapshot backend type: %s", cfg.Type)
	}
}
