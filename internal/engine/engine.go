// Package engine ties the provider catalog, the record store, the audit
// trail and the snapshot backend together behind the operations the API
// surface exposes. Every mutation is audited, success or failure; failures
// record the error string and never the request configuration.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/cloud"
	"github.com/stratus-io/stratus/internal/logging"
	"github.com/stratus-io/stratus/internal/store"
)

// Engine executes provisioning operations.
type Engine struct {
	registry *cloud.Registry
	store    *store.Store
	audit    *audit.Logger
	backend  store.Backend
}

// Option customizes an Engine.
type Option func(*Engine)

// WithBackend attaches a snapshot backend; the store is persisted after
// every successful mutation.
func WithBackend(b store.Backend) Option {
	return func(e *Engine) { e.backend = b }
}

// New creates an engine over the given registry, store and audit trail.
func New(registry *cloud.Registry, st *store.Store, auditLog *audit.Logger, opts ...Option) *Engine {
	e := &Engine{registry: registry, store: st, audit: auditLog}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Restore loads the last snapshot from the backend into the store. Called
// once at startup; without a backend it is a no-op.
func (e *Engine) Restore(ctx context.Context) error {
	if e.backend == nil {
		return nil
	}
	snap, err := e.backend.Load(ctx)
	if err != nil {
		return err
	}
	e.store.Restore(snap)
	logging.Info("restored snapshot",
		"infrastructures", len(snap.Infrastructures),
		"vms", len(snap.VMs))
	return nil
}

// Providers returns the registered provider tags.
func (e *Engine) Providers() []string {
	return e.registry.Providers()
}

// ProviderInfo returns the service offering for one provider tag.
func (e *Engine) ProviderInfo(tag string) (cloud.Info, error) {
	factory, err := e.registry.Resolve(tag)
	if err != nil {
		return cloud.Info{}, err
	}
	return factory.Info(), nil
}

// CreateInfrastructure builds the requested resource set, stores it and
// audits the outcome.
func (e *Engine) CreateInfrastructure(ctx context.Context, req cloud.Request) (*cloud.Infrastructure, error) {
	infra, err := cloud.BuildInfrastructure(e.registry, req)
	if err != nil {
		e.record(audit.Entry{
			Actor:    req.RequestedBy,
			Action:   "create_infrastructure",
			Provider: req.Provider,
			Success:  false,
			Error:    err.Error(),
		})
		return nil, err
	}

	infra.ID = uuid.NewString()
	infra.CreatedAt = time.Now().UTC()
	e.store.PutInfrastructure(*infra)

	e.record(audit.Entry{
		Actor:    req.RequestedBy,
		Action:   "create_infrastructure",
		Target:   infra.ID,
		Provider: req.Provider,
		Success:  true,
		Details: map[string]any{
			"name":           infra.Name,
			"region":         infra.Region,
			"resource_count": len(infra.Resources),
		},
	})
	e.persist(ctx)

	logging.Info("infrastructure created",
		"id", infra.ID,
		"provider", infra.Provider,
		"resources", len(infra.Resources))
	return infra, nil
}

// GetInfrastructure returns one stored record.
func (e *Engine) GetInfrastructure(id string) (cloud.Infrastructure, error) {
	return e.store.GetInfrastructure(id)
}

// ListInfrastructures returns every stored record, oldest first.
func (e *Engine) ListInfrastructures() []cloud.Infrastructure {
	return e.store.ListInfrastructures()
}

// DeleteInfrastructure removes a stored record and audits the teardown.
func (e *Engine) DeleteInfrastructure(ctx context.Context, id, actor string) error {
	infra, err := e.store.GetInfrastructure(id)
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "delete_infrastructure", Target: id,
			Success: false, Error: err.Error(),
		})
		return err
	}
	if err := e.store.DeleteInfrastructure(id); err != nil {
		return err
	}

	e.record(audit.Entry{
		Actor:    actor,
		Action:   "delete_infrastructure",
		Target:   id,
		Provider: string(infra.Provider),
		Success:  true,
		Details:  map[string]any{"resource_count": len(infra.Resources)},
	})
	e.persist(ctx)
	return nil
}

// persist saves a snapshot if a backend is attached. Persistence failures
// are logged, not surfaced; the in-memory store remains authoritative.
func (e *Engine) persist(ctx context.Context) {
	if e.backend == nil {
		return
	}
	if err := e.backend.Save(ctx, e.store.Snapshot()); err != nil {
		logging.Warn("snapshot save failed", "error", err)
	}
}

// record appends an audit entry. The trail never blocks an operation.
func (e *Engine) record(entry audit.Entry) {
	if e.audit == nil {
		return
	}
	if err := e.audit.Record(entry); err != nil {
		logging.Warn("audit write failed", "error", err)
	}
}
