package features

import (
	"fmt"
	"strings"
)

// WarningKind identifies a category of non-fatal configuration finding.
type WarningKind int

const (
	// WarnFeatureOverlap indicates a feature name listed in both the default
	// and optional lists of one declaration. The feature stays enabled.
	WarnFeatureOverlap WarningKind = iota

	// WarnUndeclaredFeature indicates a lookup of a feature name that the
	// unit never declared. The lookup resolves to disabled.
	WarnUndeclaredFeature
)

// Warning is a non-fatal configuration finding. Warnings never abort
// resolution; they are routed to a [Reporter] so callers can log them or
// assert on them in tests.
type Warning struct {
	Kind     WarningKind
	Unit     string   // project or dependency the warning concerns
	Features []string // offending feature names, sorted
}

// String renders the warning as human-readable text.
func (w Warning) String() string {
	names := strings.Join(w.Features, ", ")
	switch w.Kind {
	case WarnFeatureOverlap:
		return fmt.Sprintf("features [%s] appear in both default and optional for %q; default wins", names, w.Unit)
	case WarnUndeclaredFeature:
		return fmt.Sprintf("feature %q is not declared by %q; treating it as disabled", names, w.Unit)
	default:
		return fmt.Sprintf("unknown warning for %q: [%s]", w.Unit, names)
	}
}

// Reporter receives non-fatal findings during parsing and lookups.
type Reporter interface {
	Warn(w Warning)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Warning)

// Warn implements Reporter.
func (f ReporterFunc) Warn(w Warning) { f(w) }

// Collector is a Reporter that records every warning it receives.
// It is primarily useful in tests and batch validation.
type Collector struct {
	Warnings []Warning
}

// Warn implements Reporter.
func (c *Collector) Warn(w Warning) {
	c.Warnings = append(c.Warnings, w)
}

// OfKind returns the recorded warnings matching kind.
func (c *Collector) OfKind(kind WarningKind) []Warning {
	var out []Warning
	for _, w := range c.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

type nopReporter struct{}

func (nopReporter) Warn(Warning) {}

// Discard is a Reporter that drops all warnings.
var Discard Reporter = nopReporter{}
