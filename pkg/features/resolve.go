package features

import (
	"github.com/featgate/featgate/pkg/errors"
)

// Resolved is the output of resolving one dependency's feature split.
// Enabled and Disabled always partition the dependency's declared set:
// their union is the declared set and their intersection is empty. Both
// slices are sorted. For a dependency with no declaration and no requests,
// both are empty.
type Resolved struct {
	Dependency string
	Enabled    []string
	Disabled   []string
}

// Resolve computes a dependency's own enabled/disabled feature split from
// its declaration, the set of features its consumer requested of it, and
// whether the dependency's default features should be included.
//
// Requested names are deduplicated. When any are present, each must belong
// to the dependency's declared set or Resolve fails with UNKNOWN_FEATURES
// listing the offending names and the full declared set. An empty request
// skips validation entirely, even against an empty declaration.
//
// With includeDefaults, enabled is the union of the default list and the
// request. Without it, enabled is exactly the request: requesting a default
// feature with defaults disabled enables only that feature, not the whole
// default set.
func Resolve(dep string, requested []string, includeDefaults bool, decl Declaration) (Resolved, error) {
	declared := decl.Declared()
	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}

	request := make(map[string]bool, len(requested))
	for _, name := range requested {
		request[name] = true
	}

	if len(request) > 0 {
		unknown := make(map[string]bool)
		for name := range request {
			if !declaredSet[name] {
				unknown[name] = true
			}
		}
		if len(unknown) > 0 {
			return Resolved{}, errors.New(errors.ErrCodeUnknownFeatures,
				"dependency %q does not declare features %v (declared: %v)",
				dep, sortedKeys(unknown), declared)
		}
	}

	enabled := make(map[string]bool, len(request)+len(decl.Default))
	for name := range request {
		enabled[name] = true
	}
	if includeDefaults {
		for _, name := range decl.Default {
			enabled[name] = true
		}
	}

	disabled := make(map[string]bool, len(declared))
	for _, name := range declared {
		if !enabled[name] {
			disabled[name] = true
		}
	}

	return Resolved{
		Dependency: dep,
		Enabled:    sortedKeys(enabled),
		Disabled:   sortedKeys(disabled),
	}, nil
}

// State converts the resolved split into a State for the dependency itself,
// so the dependency's own edges can be gated against its effective features
// during transitive resolution. rep may be nil.
func (r Resolved) State(rep Reporter) *State {
	if rep == nil {
		rep = Discard
	}
	state := make(map[string]bool, len(r.Enabled)+len(r.Disabled))
	for _, name := range r.Disabled {
		state[name] = false
	}
	for _, name := range r.Enabled {
		state[name] = true
	}
	return &State{unit: r.Dependency, state: state, rep: rep}
}
