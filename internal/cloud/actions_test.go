package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVM(t *testing.T) Descriptor {
	t.Helper()
	factory, err := NewFactory(OnPrem)
	require.NoError(t, err)
	vm, err := factory.VirtualMachine("lifecycle", Config{
		"cpu": 2, "ram_gb": 4, "disk_gb": 50, "nic": "eth0",
	})
	require.NoError(t, err)
	return vm
}

func TestApplyVMAction_Lifecycle(t *testing.T) {
	vm := newTestVM(t)
	require.Equal(t, StatusCreating, vm.Status)

	// 1. start brings a fresh VM to running
	require.NoError(t, ApplyVMAction(&vm, ActionStart))
	assert.Equal(t, StatusRunning, vm.Status)

	// 2. starting twice is rejected
	err := ApplyVMAction(&vm, ActionStart)
	assert.ErrorContains(t, err, "cannot start")
	assert.Equal(t, StatusRunning, vm.Status)

	// 3. restart keeps it running
	require.NoError(t, ApplyVMAction(&vm, ActionRestart))
	assert.Equal(t, StatusRunning, vm.Status)

	// 4. stop, then stop again fails
	require.NoError(t, ApplyVMAction(&vm, ActionStop))
	assert.Equal(t, StatusStopped, vm.Status)
	assert.ErrorContains(t, ApplyVMAction(&vm, ActionStop), "cannot stop")

	// 5. restart requires a running VM
	assert.ErrorContains(t, ApplyVMAction(&vm, ActionRestart), "cannot restart")

	// 6. start from stopped works
	require.NoError(t, ApplyVMAction(&vm, ActionStart))
	assert.Equal(t, StatusRunning, vm.Status)
}

func TestApplyVMAction_InvalidAction(t *testing.T) {
	vm := newTestVM(t)
	assert.ErrorContains(t, ApplyVMAction(&vm, "hibernate"), "invalid action")
}

func TestApplyVMAction_NonVMRejected(t *testing.T) {
	factory, err := NewFactory(OnPrem)
	require.NoError(t, err)
	db, err := factory.Database("not-a-vm", Config{"engine": "postgresql"})
	require.NoError(t, err)

	assert.Error(t, ApplyVMAction(&db, ActionStart))
}

func TestUpdateVM(t *testing.T) {
	vm := newTestVM(t)

	name := "renamed"
	cpu := 8
	require.NoError(t, UpdateVM(&vm, VMUpdate{Name: &name, CPU: &cpu}))
	assert.Equal(t, "renamed", vm.Name)
	assert.Equal(t, 8, vm.Specs["cpu"])

	// untouched fields survive
	assert.Equal(t, 4, vm.Specs["ram_gb"])

	db := Descriptor{Kind: KindDatabase, Specs: Config{}}
	assert.Error(t, UpdateVM(&db, VMUpdate{Name: &name}))
}
