package cloud

import (
	"fmt"
	"strings"
)

// UnsupportedProviderError reports a provider tag with no registered factory.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q (supported: %s)",
		e.Provider, strings.Join(ProviderNames(), ", "))
}

// MissingFieldError reports required fields absent from a resource config.
// Fields preserves the catalog's declaration order.
type MissingFieldError struct {
	Provider Provider
	Kind     Kind
	Fields   []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %s: missing required fields: %s",
		e.Provider, e.Kind, strings.Join(e.Fields, ", "))
}

// InvalidValueError reports a field whose value fails a provider rule:
// an out-of-range numeric, an unsupported region, or a value outside the
// provider's enumerated set.
type InvalidValueError struct {
	Provider Provider
	Kind     Kind
	Field    string
	Reason   string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s %s: invalid value for %q: %s",
		e.Provider, e.Kind, e.Field, e.Reason)
}
