package features

import (
	"slices"
	"sort"

	"github.com/featgate/featgate/pkg/errors"
)

// Declaration is the authoritative description of the features a unit
// (project or dependency) can offer. It is constructed once per build
// invocation from static configuration and never merged across units.
type Declaration struct {
	Default  []string // enabled unless explicitly overridden
	Optional []string // declared but disabled unless requested
}

// Empty reports whether the declaration declares no features at all.
func (d Declaration) Empty() bool {
	return len(d.Default) == 0 && len(d.Optional) == 0
}

// Declared returns the union of the default and optional lists,
// deduplicated and sorted.
func (d Declaration) Declared() []string {
	seen := make(map[string]bool, len(d.Default)+len(d.Optional))
	for _, name := range d.Default {
		seen[name] = true
	}
	for _, name := range d.Optional {
		seen[name] = true
	}
	return sortedKeys(seen)
}

// overlap returns the sorted set of names present in both lists.
func (d Declaration) overlap() []string {
	inDefault := make(map[string]bool, len(d.Default))
	for _, name := range d.Default {
		inDefault[name] = true
	}
	both := make(map[string]bool)
	for _, name := range d.Optional {
		if inDefault[name] {
			both[name] = true
		}
	}
	return sortedKeys(both)
}

// declarationKeys are the only keys recognized in a raw feature declaration.
var declarationKeys = map[string]bool{"default": true, "optional": true}

// ParseDeclaration validates a raw feature configuration and converts it
// into a Declaration. The unit name is used in error messages only.
//
// Validation runs in a fixed order so malformed inputs surface specific,
// distinguishable errors:
//
//  1. A present but non-table value fails with INVALID_CONFIG_SHAPE.
//  2. Keys other than "default"/"optional" fail with UNKNOWN_CONFIG_KEYS.
//  3. A non-identifier element in either list fails with INVALID_FEATURE_NAME.
//
// A nil raw value yields an empty Declaration with no error.
func ParseDeclaration(raw any, unit string) (Declaration, error) {
	if raw == nil {
		return Declaration{}, nil
	}

	table, ok := raw.(map[string]any)
	if !ok {
		return Declaration{}, errors.New(errors.ErrCodeConfigShape,
			"features of %q: expected a table with default/optional lists, got %T", unit, raw)
	}

	var unknown []string
	for key := range table {
		if !declarationKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Declaration{}, errors.New(errors.ErrCodeUnknownKeys,
			"features of %q: unrecognized keys %v (expected only default, optional)", unit, unknown)
	}

	var decl Declaration
	var err error
	if decl.Default, err = featureList(table["default"], unit, "default"); err != nil {
		return Declaration{}, err
	}
	if decl.Optional, err = featureList(table["optional"], unit, "optional"); err != nil {
		return Declaration{}, err
	}
	return decl, nil
}

// featureList converts one raw list value into validated feature names.
// An absent value is an empty list.
func featureList(raw any, unit, key string) ([]string, error) {
	if raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		// Already-typed string slices appear when declarations are built
		// programmatically rather than decoded from a manifest.
		if names, ok := raw.([]string); ok {
			items = make([]any, len(names))
			for i, n := range names {
				items[i] = n
			}
		} else {
			return nil, errors.New(errors.ErrCodeInvalidFeatureName,
				"features of %q: %s must be a list of feature names, got %T", unit, key, raw)
		}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item.(string)
		if !ok || !errors.ValidFeatureName(name) {
			return nil, errors.New(errors.ErrCodeInvalidFeatureName,
				"features of %q: %s contains an invalid feature name: %v", unit, key, item)
		}
		names = append(names, name)
	}
	return names, nil
}

// Parse validates raw feature configuration and resolves it into a State.
// Non-fatal findings (a name in both lists) are sent to rep; rep may be nil.
// A nil raw value yields an empty State, not an error.
func Parse(raw any, unit string, rep Reporter) (*State, error) {
	decl, err := ParseDeclaration(raw, unit)
	if err != nil {
		return nil, err
	}
	return NewState(decl, unit, rep), nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
