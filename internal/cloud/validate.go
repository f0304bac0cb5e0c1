package cloud

import (
	"fmt"
	"slices"
)

// Validate checks cfg against the catalog row for (p, kind) and returns the
// first failure found, in a fixed order: missing required fields (all of
// them, reported together), then region membership, then enumerated-value
// rules, then numeric minimums. The result is deterministic for a given
// input; no descriptor is ever produced from an invalid config.
func Validate(p Provider, kind Kind, cfg Config) error {
	spec, ok := catalog[p]
	if !ok {
		return &UnsupportedProviderError{Provider: string(p)}
	}
	ks, ok := spec.kinds[kind]
	if !ok {
		return &InvalidValueError{
			Provider: p, Kind: kind, Field: "kind",
			Reason: "unknown resource kind",
		}
	}

	var missing []string
	for _, field := range ks.required {
		if v, present := cfg[field]; !present || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Provider: p, Kind: kind, Fields: missing}
	}

	if spec.regions != nil {
		if region, ok := cfg["region"].(string); ok && !slices.Contains(spec.regions, region) {
			return &InvalidValueError{
				Provider: p, Kind: kind, Field: "region",
				Reason: fmt.Sprintf("region %q not supported by %s", region, p),
			}
		}
	}

	for _, field := range ks.enumFields {
		v, present := cfg[field]
		if !present {
			continue
		}
		s, isString := v.(string)
		if !isString || !slices.Contains(ks.enums[field], s) {
			return &InvalidValueError{
				Provider: p, Kind: kind, Field: field,
				Reason: fmt.Sprintf("%v not in supported set %v", v, ks.enums[field]),
			}
		}
	}

	for _, field := range ks.minimumFields {
		v, present := cfg[field]
		if !present {
			continue
		}
		n, isInt := asInt(v)
		if !isInt {
			return &InvalidValueError{
				Provider: p, Kind: kind, Field: field,
				Reason: fmt.Sprintf("expected an integer, got %T", v),
			}
		}
		if min := ks.minimums[field]; n < min {
			return &InvalidValueError{
				Provider: p, Kind: kind, Field: field,
				Reason: fmt.Sprintf("minimum %d, got %d", min, n),
			}
		}
	}

	return nil
}

// asInt accepts the integer representations seen from Go literals and from
// decoded JSON bodies.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
