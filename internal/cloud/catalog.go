package cloud

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// kindSpec is one row of the provider catalog: everything the validator and
// builder need for a single (provider, kind) pair. Adding a provider means
// adding rows here, not a new type hierarchy.
type kindSpec struct {
	// required fields, in the order they are reported when missing.
	required []string
	// defaults overlaid onto keys the caller did not supply.
	defaults Config
	// enums constrains caller-supplied values to a fixed set, checked in
	// the order of enumFields.
	enumFields []string
	enums      map[string][]string
	// minimums are inclusive integer lower bounds, checked in the order of
	// minimumFields.
	minimumFields []string
	minimums      map[string]int
	// idFormat receives a random hex token of idHexLen characters.
	idFormat string
	idHexLen int
	typeTag  string
}

// newID synthesizes a resource identifier: fixed provider/kind shape,
// random content.
func (ks kindSpec) newID() string {
	return fmt.Sprintf(ks.idFormat, randomHex(ks.idHexLen))
}

// providerSpec is the full catalog entry for one provider.
type providerSpec struct {
	displayName string
	// regions enumerates supported regions; nil accepts any region.
	regions []string
	// regionAliases maps abbreviated region names to canonical ones.
	regionAliases map[string]string
	// services maps resource kind to the simulated service's display name.
	services map[string]string
	kinds    map[Kind]kindSpec
}

var catalog = map[Provider]providerSpec{
	AWS:    awsSpec(),
	Azure:  azureSpec(),
	GCP:    gcpSpec(),
	Oracle: oracleSpec(),
	OnPrem: onpremSpec(),
}

func randomHex(n int) string {
	s := ""
	for len(s) < n {
		u := uuid.New()
		s += hex.EncodeToString(u[:])
	}
	return s[:n]
}
