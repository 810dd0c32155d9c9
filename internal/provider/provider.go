// Package provider maps provider identifiers to their process-wide
// operator implementations.
package provider

import (
	"slices"
	"sync"

	"github.com/born-ml/numnet/internal/backend/naive"
	"github.com/born-ml/numnet/internal/opr"
)

// table is built once on first use and never modified afterwards.
var table = sync.OnceValue(func() map[opr.Provider]opr.OpBase {
	return map[opr.Provider]opr.OpBase{
		opr.Naive: naive.New(),
	}
})

// Get returns the implementation registered for p.
// Unrecognized providers report false.
func Get(p opr.Provider) (opr.OpBase, bool) {
	impl, ok := table()[p]
	return impl, ok
}

// Available returns the registered providers in ascending order.
func Available() []opr.Provider {
	providers := make([]opr.Provider, 0, len(table()))
	for p := range table() {
		providers = append(providers, p)
	}
	slices.Sort(providers)
	return providers
}
