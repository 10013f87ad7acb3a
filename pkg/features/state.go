package features

import "maps"

// State is the canonical name→enabled mapping derived from one Declaration.
// It is produced once per build invocation and consumed read-only by the
// gate filter, the report command, and the code-selection stage.
//
// The zero value is not usable; use [NewState] or [Parse].
type State struct {
	unit  string
	state map[string]bool
	rep   Reporter
}

// NewState resolves a Declaration into a State. Optional names are applied
// first as disabled, default names second as enabled, so a name listed in
// both ends up enabled. A non-empty overlap emits a single
// WarnFeatureOverlap through rep naming the overlapping features.
//
// rep receives undeclared-lookup warnings from [State.IsEnabled] for the
// lifetime of the State; a nil rep discards them.
func NewState(decl Declaration, unit string, rep Reporter) *State {
	if rep == nil {
		rep = Discard
	}

	state := make(map[string]bool, len(decl.Default)+len(decl.Optional))
	for _, name := range decl.Optional {
		state[name] = false
	}
	for _, name := range decl.Default {
		state[name] = true
	}

	if overlap := decl.overlap(); len(overlap) > 0 {
		rep.Warn(Warning{Kind: WarnFeatureOverlap, Unit: unit, Features: overlap})
	}

	return &State{unit: unit, state: state, rep: rep}
}

// Unit returns the name of the project or dependency the State belongs to.
func (s *State) Unit() string {
	if s == nil {
		return ""
	}
	return s.unit
}

// All returns a copy of the full name→enabled map.
func (s *State) All() map[string]bool {
	if s == nil {
		return map[string]bool{}
	}
	return maps.Clone(s.state)
}

// Len returns the number of declared features.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.state)
}

// Empty reports whether no features are declared at all.
func (s *State) Empty() bool { return s.Len() == 0 }

// DeclaredNames returns every declared feature name, sorted.
func (s *State) DeclaredNames() []string {
	if s == nil {
		return nil
	}
	set := make(map[string]bool, len(s.state))
	for name := range s.state {
		set[name] = true
	}
	return sortedKeys(set)
}

// EnabledNames returns the enabled feature names, sorted.
func (s *State) EnabledNames() []string {
	if s == nil {
		return nil
	}
	set := make(map[string]bool)
	for name, on := range s.state {
		if on {
			set[name] = true
		}
	}
	return sortedKeys(set)
}

// IsEnabled reports whether the named feature is enabled. A name absent from
// the declared set resolves to false and emits a WarnUndeclaredFeature, which
// catches typos without breaking dead-code-elimination semantics.
func (s *State) IsEnabled(name string) bool {
	if s == nil {
		return false
	}
	on, declared := s.state[name]
	if !declared {
		s.rep.Warn(Warning{Kind: WarnUndeclaredFeature, Unit: s.unit, Features: []string{name}})
		return false
	}
	return on
}

// enabled is IsEnabled without the undeclared-lookup warning. The gate filter
// uses it because only_features names belong to the consumer's vocabulary and
// are reported through their own validation path.
func (s *State) enabled(name string) bool {
	if s == nil {
		return false
	}
	return s.state[name]
}
