package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stratus-io/stratus/internal/cloud"
)

// ErrNotFound is returned for lookups of ids the store has never seen or
// that have been deleted.
var ErrNotFound = errors.New("not found")

// Store is the in-memory system of record for provisioned infrastructure
// and standalone VMs. All methods are safe for concurrent use; nothing is
// persisted unless a snapshot backend is wired in front of it.
type Store struct {
	mu     sync.RWMutex
	serial uint64
	infras map[string]cloud.Infrastructure
	vms    map[string]cloud.Descriptor
}

// New returns an empty store.
func New() *Store {
	return &Store{
		infras: make(map[string]cloud.Infrastructure),
		vms:    make(map[string]cloud.Descriptor),
	}
}

// PutInfrastructure inserts or replaces an infrastructure record.
func (s *Store) PutInfrastructure(infra cloud.Infrastructure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infras[infra.ID] = infra
	s.serial++
}

// GetInfrastructure returns the record for id or ErrNotFound.
func (s *Store) GetInfrastructure(id string) (cloud.Infrastructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infra, ok := s.infras[id]
	if !ok {
		return cloud.Infrastructure{}, ErrNotFound
	}
	return infra, nil
}

// ListInfrastructures returns every record ordered by creation time, oldest
// first, with the id as tiebreaker.
func (s *Store) ListInfrastructures() []cloud.Infrastructure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.infrastructuresLocked()
}

func (s *Store) infrastructuresLocked() []cloud.Infrastructure {
	out := make([]cloud.Infrastructure, 0, len(s.infras))
	for _, infra := range s.infras {
		out = append(out, infra)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DeleteInfrastructure removes the record for id, or returns ErrNotFound.
func (s *Store) DeleteInfrastructure(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.infras[id]; !ok {
		return ErrNotFound
	}
	delete(s.infras, id)
	s.serial++
	return nil
}

// PutVM inserts or replaces a standalone VM descriptor keyed by its id.
// The store keeps its own copy of the Specs map.
func (s *Store) PutVM(vm cloud.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vms[vm.ID] = vm.Clone()
	s.serial++
}

// GetVM returns the descriptor for id or ErrNotFound. The returned
// descriptor does not share its Specs map with the store.
func (s *Store) GetVM(id string) (cloud.Descriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vm, ok := s.vms[id]
	if !ok {
		return cloud.Descriptor{}, ErrNotFound
	}
	return vm.Clone(), nil
}

// ListVMs returns every standalone VM ordered by id, each with its own
// Specs map.
func (s *Store) ListVMs() []cloud.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vmsLocked()
}

func (s *Store) vmsLocked() []cloud.Descriptor {
	out := make([]cloud.Descriptor, 0, len(s.vms))
	for _, vm := range s.vms {
		out = append(out, vm.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateVM applies fn to a copy of the descriptor for id under the write
// lock. The stored record changes only if fn returns nil; fn never touches
// a map a previous reader might still hold.
func (s *Store) UpdateVM(id string, fn func(*cloud.Descriptor) error) (cloud.Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.vms[id]
	if !ok {
		return cloud.Descriptor{}, ErrNotFound
	}
	vm := stored.Clone()
	if err := fn(&vm); err != nil {
		return cloud.Descriptor{}, err
	}
	s.vms[id] = vm
	s.serial++
	return vm.Clone(), nil
}

// DeleteVM removes the descriptor for id, or returns ErrNotFound.
func (s *Store) DeleteVM(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vms[id]; !ok {
		return ErrNotFound
	}
	delete(s.vms, id)
	s.serial++
	return nil
}

// Snapshot is the persisted form of a store: a serial that increments on
// every mutation plus the full record sets.
type Snapshot struct {
	Serial          uint64                 `json:"serial"`
	TakenAt         time.Time              `json:"taken_at"`
	Infrastructures []cloud.Infrastructure `json:"infrastructures"`
	VMs             []cloud.Descriptor     `json:"vms"`
}

// Snapshot captures the current contents in a stable order. The serial and
// both record sets are read under one lock acquisition, so the serial
// always matches the captured contents.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Snapshot{
		Serial:          s.serial,
		TakenAt:         time.Now().UTC(),
		Infrastructures: s.infrastructuresLocked(),
		VMs:             s.vmsLocked(),
	}
}

// Restore replaces the store contents with a snapshot. A nil snapshot
// clears the store.
func (s *Store) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.infras = make(map[string]cloud.Infrastructure)
	s.vms = make(map[string]cloud.Descriptor)
	if snap == nil {
		s.serial = 0
		return
	}
	for _, infra := range snap.Infrastructures {
		s.infras[infra.ID] = infra
	}
	for _, vm := range snap.VMs {
		s.vms[vm.ID] = vm
	}
	s.serial = snap.Serial
}
