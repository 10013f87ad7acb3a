package features

import (
	"github.com/featgate/featgate/pkg/errors"
)

// ValidateOnlyFeatures validates the raw only_features option attached to a
// dependency edge and returns the cleaned list of feature names.
//
// Absence of the option (nil raw) is valid and returns a nil list, meaning
// the dependency is unconditionally included. A present value must be a
// non-empty sequence of feature-name identifiers: a non-list value, an empty
// list, and a list holding a non-identifier element each fail with
// INVALID_ONLY_FEATURES naming the dependency and the actual value. An empty
// list is always an error, never "exclude unconditionally".
func ValidateOnlyFeatures(dep string, raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, name := range v {
			items[i] = name
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidOnlyFeatures,
			"dependency %q: only_features must be a non-empty list of feature names, got %v", dep, raw)
	}

	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidOnlyFeatures,
			"dependency %q: only_features must not be empty", dep)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item.(string)
		if !ok || !errors.ValidFeatureName(name) {
			return nil, errors.New(errors.ErrCodeInvalidOnlyFeatures,
				"dependency %q: only_features contains an invalid feature name: %v", dep, item)
		}
		names = append(names, name)
	}
	return names, nil
}

// ShouldInclude decides whether a dependency edge participates in the graph.
//
// With no only_features requirement the dependency is always included. A
// consumer that declares no features at all also includes every dependency,
// gated or not. Otherwise inclusion requires at least one name in only to be
// enabled in the consumer (OR semantics); matching features are not
// otherwise distinguished.
func ShouldInclude(consumer *State, only []string) bool {
	if len(only) == 0 {
		return true
	}
	if consumer.Empty() {
		return true
	}
	for _, name := range only {
		if consumer.enabled(name) {
			return true
		}
	}
	return false
}
