package cloud

// Factory builds the family of resources for a single provider. It is a
// stateless handle over the provider's catalog entry; every construction is
// a pure function of its inputs plus the random identifier content.
type Factory struct {
	provider Provider
	spec     providerSpec
}

// NewFactory returns the factory for a provider tag, or an
// UnsupportedProviderError for anything outside the catalog.
func NewFactory(p Provider) (*Factory, error) {
	spec, ok := catalog[p]
	if !ok {
		return nil, &UnsupportedProviderError{Provider: string(p)}
	}
	return &Factory{provider: p, spec: spec}, nil
}

// Provider returns the factory's provider tag.
func (f *Factory) Provider() Provider { return f.provider }

// Info describes the provider's simulated service offering.
func (f *Factory) Info() Info {
	return Info{
		Name:     f.spec.displayName,
		Code:     string(f.provider),
		Regions:  f.Regions(),
		Services: f.spec.services,
	}
}

// Regions returns the provider's supported regions; nil means any region
// is accepted.
func (f *Factory) Regions() []string {
	if f.spec.regions == nil {
		return nil
	}
	out := make([]string, len(f.spec.regions))
	copy(out, f.spec.regions)
	return out
}

// NormalizeRegion canonicalizes provider-specific region aliases. Regions
// with no alias pass through unchanged.
func (f *Factory) NormalizeRegion(region string) string {
	if canonical, ok := f.spec.regionAliases[region]; ok {
		return canonical
	}
	return region
}

// VirtualMachine builds a VM descriptor.
func (f *Factory) VirtualMachine(name string, cfg Config) (Descriptor, error) {
	return f.build(KindVM, name, cfg)
}

// Database builds a database descriptor.
func (f *Factory) Database(name string, cfg Config) (Descriptor, error) {
	return f.build(KindDatabase, name, cfg)
}

// LoadBalancer builds a load balancer descriptor.
func (f *Factory) LoadBalancer(name string, cfg Config) (Descriptor, error) {
	return f.build(KindLoadBalancer, name, cfg)
}

// Storage builds a storage descriptor.
func (f *Factory) Storage(name string, cfg Config) (Descriptor, error) {
	return f.build(KindStorage, name, cfg)
}

// Build builds a descriptor of an arbitrary kind.
func (f *Factory) Build(kind Kind, name string, cfg Config) (Descriptor, error) {
	return f.build(kind, name, cfg)
}

// build normalizes the region, validates, overlays defaults (caller values
// always win) and synthesizes the identifier. Validation failures propagate
// untouched; nothing is partially constructed.
func (f *Factory) build(kind Kind, name string, cfg Config) (Descriptor, error) {
	ks, ok := f.spec.kinds[kind]
	if !ok {
		return Descriptor{}, &InvalidValueError{
			Provider: f.provider, Kind: kind, Field: "kind",
			Reason: "unknown resource kind",
		}
	}

	cfg = cfg.Clone()
	if region, ok := cfg["region"].(string); ok {
		cfg["region"] = f.NormalizeRegion(region)
	}

	if err := Validate(f.provider, kind, cfg); err != nil {
		return Descriptor{}, err
	}

	for k, v := range ks.defaults {
		if _, present := cfg[k]; !present {
			cfg[k] = v
		}
	}

	region, _ := cfg["region"].(string)
	return Descriptor{
		ID:       ks.newID(),
		Name:     name,
		Kind:     kind,
		Type:     ks.typeTag,
		Provider: f.provider,
		Region:   region,
		Status:   StatusCreating,
		Specs:    cfg,
	}, nil
}

// BuildInfrastructure builds every requested resource kind in the fixed
// order vm, database, load_balancer, storage. The VM is always built; the
// first failure aborts the whole request with no partial results. The
// request-level region is injected into a per-resource config only when the
// config carries no region of its own.
func BuildInfrastructure(reg *Registry, req Request) (*Infrastructure, error) {
	factory, err := reg.Resolve(req.Provider)
	if err != nil {
		return nil, err
	}

	configs := map[Kind]Config{
		KindVM:           req.VM,
		KindDatabase:     req.Database,
		KindLoadBalancer: req.LoadBalancer,
		KindStorage:      req.Storage,
	}
	include := map[Kind]bool{
		KindVM:           true,
		KindDatabase:     req.IncludeDatabase,
		KindLoadBalancer: req.IncludeLoadBalancer,
		KindStorage:      req.IncludeStorage,
	}

	infra := &Infrastructure{
		Provider:    factory.Provider(),
		Name:        req.Name,
		Region:      factory.NormalizeRegion(req.Region),
		RequestedBy: req.RequestedBy,
	}
	for _, kind := range buildOrder {
		if !include[kind] {
			continue
		}
		cfg := configs[kind].Clone()
		if _, present := cfg["region"]; !present && req.Region != "" {
			cfg["region"] = req.Region
		}
		desc, err := factory.build(kind, req.Name, cfg)
		if err != nil {
			return nil, err
		}
		infra.Resources = append(infra.Resources, desc)
	}
	return infra, nil
}
