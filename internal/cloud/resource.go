package cloud

import "time"

// Kind identifies one of the four resource kinds a provider can build.
type Kind string

const (
	KindVM           Kind = "vm"
	KindDatabase     Kind = "database"
	KindLoadBalancer Kind = "load_balancer"
	KindStorage      Kind = "storage"
)

// buildOrder is the fixed construction order for an infrastructure request.
var buildOrder = [...]Kind{KindVM, KindDatabase, KindLoadBalancer, KindStorage}

// Resource status labels. A descriptor is born "creating"; only the legacy
// VM surface transitions it afterwards.
const (
	StatusCreating = "creating"
	StatusRunning  = "running"
	StatusStopped  = "stopped"
)

// Config is an open field-name -> value mapping for one resource kind.
// The builder never mutates a caller's config; it works on a copy.
type Config map[string]any

// Clone returns a shallow copy of the config. A nil config clones to an
// empty, writable one.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Descriptor is the synthetic record representing one "created" resource.
type Descriptor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kind     Kind     `json:"kind"`
	Type     string   `json:"type"`
	Provider Provider `json:"provider"`
	Region   string   `json:"region"`
	Status   string   `json:"status"`
	Specs    Config   `json:"specs"`
}

// Clone returns a copy of the descriptor with its own Specs map, safe to
// hand across a concurrency boundary.
func (d Descriptor) Clone() Descriptor {
	d.Specs = d.Specs.Clone()
	return d
}

// Infrastructure aggregates the descriptors built for a single request.
// Resources are ordered vm, database, load_balancer, storage.
type Infrastructure struct {
	ID          string       `json:"id"`
	Provider    Provider     `json:"provider"`
	Name        string       `json:"name"`
	Region      string       `json:"region"`
	Resources   []Descriptor `json:"resources"`
	RequestedBy string       `json:"requested_by,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Request describes one infrastructure request. The VM is always built;
// the other kinds are opt-in via the inclusion flags.
type Request struct {
	Provider            string `json:"provider"`
	Name                string `json:"name"`
	Region              string `json:"region"`
	IncludeDatabase     bool   `json:"include_database"`
	IncludeLoadBalancer bool   `json:"include_load_balancer"`
	IncludeStorage      bool   `json:"include_storage"`
	VM                  Config `json:"vm_config,omitempty"`
	Database            Config `json:"database_config,omitempty"`
	LoadBalancer        Config `json:"load_balancer_config,omitempty"`
	Storage             Config `json:"storage_config,omitempty"`
	RequestedBy         string `json:"requested_by,omitempty"`
}
