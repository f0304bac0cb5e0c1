package cloud

import "fmt"

// VM lifecycle actions, the only mutation the legacy VM surface supports.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionRestart = "restart"
)

// ApplyVMAction transitions a VM descriptor's status in place. Only vm
// descriptors have a lifecycle; every other kind stays at its construction
// status. start is valid from creating or stopped; stop and restart require
// a running VM.
func ApplyVMAction(d *Descriptor, action string) error {
	if d.Kind != KindVM {
		return fmt.Errorf("actions apply to vm resources, not %s", d.Kind)
	}
	switch action {
	case ActionStart:
		if d.Status == StatusRunning {
			return fmt.Errorf("cannot start vm in state %q", d.Status)
		}
		d.Status = StatusRunning
	case ActionStop:
		if d.Status != StatusRunning {
			return fmt.Errorf("cannot stop vm in state %q", d.Status)
		}
		d.Status = StatusStopped
	case ActionRestart:
		if d.Status != StatusRunning {
			return fmt.Errorf("cannot restart vm in state %q", d.Status)
		}
		// a simulated restart lands back in running
	default:
		return fmt.Errorf("invalid action %q", action)
	}
	return nil
}

// VMUpdate holds the mutable fields of the legacy VM surface. Nil fields
// are left untouched.
type VMUpdate struct {
	Name         *string `json:"name,omitempty"`
	CPU          *int    `json:"cpu,omitempty"`
	RAMGB        *int    `json:"ram_gb,omitempty"`
	DiskGB       *int    `json:"disk_gb,omitempty"`
	InstanceType *string `json:"instance_type,omitempty"`
	Size         *string `json:"size,omitempty"`
	MachineType  *string `json:"machine_type,omitempty"`
}

// UpdateVM applies the non-nil changes to a VM descriptor's name and specs.
func UpdateVM(d *Descriptor, u VMUpdate) error {
	if d.Kind != KindVM {
		return fmt.Errorf("updates apply to vm resources, not %s", d.Kind)
	}
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.CPU != nil {
		d.Specs["cpu"] = *u.CPU
	}
	if u.RAMGB != nil {
		d.Specs["ram_gb"] = *u.RAMGB
	}
	if u.DiskGB != nil {
		d.Specs["disk_gb"] = *u.DiskGB
	}
	if u.InstanceType != nil {
		d.Specs["instance_type"] = *u.InstanceType
	}
	if u.Size != nil {
		d.Specs["size"] = *u.Size
	}
	if u.MachineType != nil {
		d.Specs["machine_type"] = *u.MachineType
	}
	return nil
}
