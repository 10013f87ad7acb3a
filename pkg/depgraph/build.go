package depgraph

import (
	"fmt"
	"strings"

	"github.com/featgate/featgate/pkg/features"
	"github.com/featgate/featgate/pkg/manifest"
)

// DefaultMaxDepth bounds transitive traversal during [Build].
const DefaultMaxDepth = 50

// Loader fetches a dependency's own manifest during transitive resolution.
// Returning a nil manifest (and nil error) means the dependency has no
// manifest: it declares no features and no further dependencies.
type Loader interface {
	Load(name string) (*manifest.Manifest, error)
}

// Options configures graph construction.
type Options struct {
	Loader   Loader               // source of dependency manifests (nil: direct deps only)
	Reporter features.Reporter    // sink for non-fatal findings (nil: discard)
	MaxDepth int                  // maximum traversal depth (default: 50)
	Logger   func(string, ...any) // progress/exclusion callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Reporter == nil {
		opts.Reporter = features.Discard
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Build constructs the gated dependency graph rooted at the given manifest.
//
// For every direct dependency edge, in name order:
//
//  1. The edge's only_features option is validated.
//  2. The gate filter decides inclusion against the consumer's enabled
//     features. An excluded dependency is skipped entirely; its transitive
//     dependencies are never loaded.
//  3. An included dependency's own feature split is resolved from its
//     declaration, the requested features, and the default_features flag,
//     then its own edges are processed recursively against that split.
//
// A dependency reached from several consumers keeps the feature split of its
// first (shallowest, name-ordered) resolution; later edges only link to the
// existing node. Cyclic manifests fail with [ErrCycle].
func Build(root *manifest.Manifest, opts Options) (*Graph, error) {
	opts = opts.WithDefaults()

	state, err := root.FeatureState(opts.Reporter)
	if err != nil {
		return nil, err
	}
	decl, err := root.Declaration()
	if err != nil {
		return nil, err
	}

	g := New(nil)
	rootNode := Node{
		ID:       root.Name(),
		Version:  root.Package.Version,
		Enabled:  state.EnabledNames(),
		Disabled: disabledNames(decl, state),
	}
	if err := g.AddNode(rootNode); err != nil {
		return nil, err
	}
	g.SetRoot(root.Name())

	b := &builder{graph: g, opts: opts, visiting: map[string]bool{root.Name(): true}}
	if err := b.expand(root, state, []string{root.Name()}); err != nil {
		return nil, err
	}
	return g, nil
}

type builder struct {
	graph    *Graph
	opts     Options
	visiting map[string]bool // nodes on the current traversal path
}

// expand processes the direct edges of one manifest whose resolved state is
// known, gating each edge and recursing into included dependencies.
func (b *builder) expand(m *manifest.Manifest, consumer *features.State, path []string) error {
	if len(path) > b.opts.MaxDepth {
		return fmt.Errorf("dependency tree exceeds maximum depth %d at %s", b.opts.MaxDepth, strings.Join(path, " -> "))
	}

	for _, edge := range m.Edges() {
		only, err := features.ValidateOnlyFeatures(edge.Name, edge.Dep.OnlyFeatures)
		if err != nil {
			return err
		}
		if !features.ShouldInclude(consumer, only) {
			b.opts.Logger("excluded %s (requires one of %v)", edge.Name, only)
			continue
		}

		if b.visiting[edge.Name] {
			return fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(path, " -> "), edge.Name)
		}
		if b.graph.Has(edge.Name) {
			// Already resolved through another consumer; link only.
			if err := b.graph.AddEdge(Edge{From: m.Name(), To: edge.Name}); err != nil {
				return err
			}
			continue
		}

		var depManifest *manifest.Manifest
		if b.opts.Loader != nil {
			if depManifest, err = b.opts.Loader.Load(edge.Name); err != nil {
				return err
			}
		}

		var depDecl features.Declaration
		if depManifest != nil {
			if depDecl, err = depManifest.Declaration(); err != nil {
				return err
			}
		}

		resolved, err := features.Resolve(edge.Name, edge.Dep.Features, edge.Dep.IncludeDefaults(), depDecl)
		if err != nil {
			return err
		}

		node := Node{
			ID:       edge.Name,
			Version:  edge.Dep.Version,
			Enabled:  resolved.Enabled,
			Disabled: resolved.Disabled,
		}
		if err := b.graph.AddNode(node); err != nil {
			return err
		}
		if err := b.graph.AddEdge(Edge{From: m.Name(), To: edge.Name}); err != nil {
			return err
		}

		if depManifest != nil {
			b.visiting[edge.Name] = true
			err := b.expand(depManifest, resolved.State(b.opts.Reporter), append(path, edge.Name))
			delete(b.visiting, edge.Name)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// disabledNames returns declared-but-disabled names for the root node.
func disabledNames(decl features.Declaration, state *features.State) []string {
	enabled := make(map[string]bool)
	for _, name := range state.EnabledNames() {
		enabled[name] = true
	}
	var out []string
	for _, name := range decl.Declared() {
		if !enabled[name] {
			out = append(out, name)
		}
	}
	return out
}
