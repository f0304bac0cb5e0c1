package cloud

// Provider identifies one of the synthetic infrastructure backends.
// Tags are matched exactly and case-sensitively everywhere.
type Provider string

const (
	AWS    Provider = "aws"
	Azure  Provider = "azure"
	GCP    Provider = "gcp"
	Oracle Provider = "oracle"
	OnPrem Provider = "onprem"
)

// builtinProviders lists every provider with a catalog entry, in the order
// they are reported to callers.
var builtinProviders = []Provider{AWS, Azure, GCP, Oracle, OnPrem}

// ProviderNames returns the tags of all built-in providers.
func ProviderNames() []string {
	names := make([]string, len(builtinProviders))
	for i, p := range builtinProviders {
		names[i] = string(p)
	}
	return names
}

// Info describes a provider's simulated service offering, as exposed by the
// provider info endpoint.
type Info struct {
	Name     string            `json:"name"`
	Code     string            `json:"code"`
	Regions  []string          `json:"supported_regions,omitempty"`
	Services map[string]string `json:"services"`
}
