package engine

import (
	"context"

	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/cloud"
	"github.com/stratus-io/stratus/internal/logging"
)

// CreateVM provisions a standalone VM outside any infrastructure group.
// This is the legacy single-resource surface.
func (e *Engine) CreateVM(ctx context.Context, provider, name string, cfg cloud.Config, actor string) (cloud.Descriptor, error) {
	factory, err := e.registry.Resolve(provider)
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "create_vm", Provider: provider,
			Success: false, Error: err.Error(),
		})
		return cloud.Descriptor{}, err
	}

	vm, err := factory.VirtualMachine(name, cfg)
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "create_vm", Provider: provider,
			Success: false, Error: err.Error(),
		})
		return cloud.Descriptor{}, err
	}

	e.store.PutVM(vm)
	e.record(audit.Entry{
		Actor: actor, Action: "create_vm", Target: vm.ID, Provider: provider,
		Success: true, Details: map[string]any{"name": vm.Name, "region": vm.Region},
	})
	e.persist(ctx)

	logging.Info("vm created", "id", vm.ID, "provider", provider)
	return vm, nil
}

// GetVM returns one standalone VM.
func (e *Engine) GetVM(id string) (cloud.Descriptor, error) {
	return e.store.GetVM(id)
}

// ListVMs returns every standalone VM ordered by id.
func (e *Engine) ListVMs() []cloud.Descriptor {
	return e.store.ListVMs()
}

// UpdateVM applies a partial update to a standalone VM.
func (e *Engine) UpdateVM(ctx context.Context, id string, upd cloud.VMUpdate, actor string) (cloud.Descriptor, error) {
	vm, err := e.store.UpdateVM(id, func(d *cloud.Descriptor) error {
		return cloud.UpdateVM(d, upd)
	})
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "update_vm", Target: id,
			Success: false, Error: err.Error(),
		})
		return cloud.Descriptor{}, err
	}

	e.record(audit.Entry{
		Actor: actor, Action: "update_vm", Target: id, Provider: string(vm.Provider),
		Success: true,
	})
	e.persist(ctx)
	return vm, nil
}

// ApplyVMAction runs a lifecycle action (start, stop, restart) on a
// standalone VM.
func (e *Engine) ApplyVMAction(ctx context.Context, id, action, actor string) (cloud.Descriptor, error) {
	vm, err := e.store.UpdateVM(id, func(d *cloud.Descriptor) error {
		return cloud.ApplyVMAction(d, action)
	})
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "vm_" + action, Target: id,
			Success: false, Error: err.Error(),
		})
		return cloud.Descriptor{}, err
	}

	e.record(audit.Entry{
		Actor: actor, Action: "vm_" + action, Target: id, Provider: string(vm.Provider),
		Success: true, Details: map[string]any{"status": vm.Status},
	})
	e.persist(ctx)
	return vm, nil
}

// DeleteVM removes a standalone VM.
func (e *Engine) DeleteVM(ctx context.Context, id, actor string) error {
	vm, err := e.store.GetVM(id)
	if err != nil {
		e.record(audit.Entry{
			Actor: actor, Action: "delete_vm", Target: id,
			Success: false, Error: err.Error(),
		})
		return err
	}
	if err := e.store.DeleteVM(id); err != nil {
		return err
	}

	e.record(audit.Entry{
		Actor: actor, Action: "delete_vm", Target: id, Provider: string(vm.Provider),
		Success: true,
	})
	e.persist(ctx)
	return nil
}
