// Package features implements build-time feature declaration, resolution,
// and dependency gating.
//
// # Overview
//
// A featgate project declares named boolean capability switches ("features")
// in its manifest, split into a default list (enabled unless overridden) and
// an optional list (declared but disabled unless requested). This package
// turns those raw declarations into a canonical name→bool map, resolves the
// feature split of a dependency against what its consumer requested, and
// decides whether a gated dependency participates in the build graph at all.
//
// Everything here runs before any compilation work: the resolved booleans are
// handed to a later code-selection stage as compile-time constants, so dead
// branches can be eliminated and excluded dependencies never enter the graph.
//
// # Basic Usage
//
// Parse a raw declaration into a [State] and query it:
//
//	rep := &features.Collector{}
//	state, err := features.Parse(raw, "myapp", rep)
//	if err != nil {
//	    return err
//	}
//	if state.IsEnabled("metrics") {
//	    // ...
//	}
//
// Resolve a dependency's own feature split:
//
//	resolved, err := features.Resolve("libjson", []string{"simd"}, true, decl)
//
// Gate a dependency edge:
//
//	only, err := features.ValidateOnlyFeatures("libmetrics", rawOnly)
//	if err != nil {
//	    return err
//	}
//	if features.ShouldInclude(state, only) {
//	    // dependency participates in the graph
//	}
//
// # Validation
//
// Malformed configuration is always a fatal error with a specific code from
// the errors package (INVALID_CONFIG_SHAPE, UNKNOWN_CONFIG_KEYS,
// INVALID_FEATURE_NAME, UNKNOWN_FEATURES, INVALID_ONLY_FEATURES). Checks run
// in a documented order so distinguishable inputs surface distinguishable
// errors. Two findings are non-fatal and flow through a [Reporter] instead:
// a feature appearing in both default and optional (default wins), and a
// lookup of a feature that was never declared (resolves to disabled).
//
// # Concurrency
//
// All operations are pure, synchronous computations over immutable inputs.
// A [State] is safe for concurrent reads once constructed; reporters are
// invoked synchronously from the calling goroutine.
package features
