package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/featgate/featgate/pkg/depgraph"
	"github.com/featgate/featgate/pkg/errors"
	"github.com/featgate/featgate/pkg/export"
	"github.com/featgate/featgate/pkg/manifest"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	depsDir string // directory holding vendored dependency manifests
	format  string // output format: text, json, dot, svg
	output  string // output file path (stdout if empty)
}

// newGraphCmd creates the graph command, which builds the gated dependency
// graph and exports it.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: "text"}

	cmd := &cobra.Command{
		Use:   "graph [manifest]",
		Short: "Build the gated dependency graph and export it",
		Long: `Build the dependency graph with feature gating applied.

Dependencies whose only_features requirement matches none of the project's
enabled features are excluded entirely, together with their transitive
dependencies. Each included dependency carries its own resolved feature split.

Transitive dependency manifests are looked up under --deps-dir as
<deps-dir>/<name>/featgate.toml; dependencies without a manifest simply
declare no features.

Examples:
  featgate graph                              # text listing to stdout
  featgate graph --format json -o deps.json   # snapshot for the build stage
  featgate graph --format svg -o deps.svg     # rendered picture`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.depsDir, "deps-dir", "deps", "directory with vendored dependency manifests")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runGraph(cmd *cobra.Command, args []string, opts graphOpts) error {
	logger := loggerFromContext(cmd.Context())

	m, err := manifest.Load(manifestArg(args))
	if err != nil {
		return err
	}

	g, err := depgraph.Build(m, depgraph.Options{
		Loader:   manifest.DirLoader{Root: resolveDepsDir(m.Path(), opts.depsDir)},
		Reporter: warnReporter(logger),
		Logger:   func(msg string, kv ...any) { logger.Debugf(msg, kv...) },
	})
	if err != nil {
		return err
	}
	logger.Debugf("graph built: %d packages, %d edges", g.NodeCount(), g.EdgeCount())

	var out []byte
	switch opts.format {
	case "text":
		out = []byte(renderGraphText(g))
	case "json":
		if opts.output != "" {
			return export.ExportJSON(g, opts.output)
		}
		return export.WriteJSON(g, cmd.OutOrStdout())
	case "dot":
		out = []byte(export.ToDOT(g))
	case "svg":
		svg, err := export.RenderSVG(cmd.Context(), export.ToDOT(g))
		if err != nil {
			return err
		}
		out = svg
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (expected text, json, dot, svg)", opts.format)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(opts.output, out, 0o644)
}

// resolveDepsDir resolves the deps directory relative to the manifest's
// directory, so the command works from anywhere.
func resolveDepsDir(manifestPath, depsDir string) string {
	if filepath.IsAbs(depsDir) || manifestPath == "" {
		return depsDir
	}
	return filepath.Join(filepath.Dir(manifestPath), depsDir)
}

// renderGraphText formats the gated graph as an indented dependency listing
// rooted at the project.
func renderGraphText(g *depgraph.Graph) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Dependencies of %s", g.Root())))
	b.WriteString("\n\n")
	writeGraphNode(&b, g, g.Root(), 0, map[string]bool{})
	return b.String()
}

func writeGraphNode(b *strings.Builder, g *depgraph.Graph, id string, depth int, seen map[string]bool) {
	n, ok := g.Node(id)
	if !ok {
		return
	}

	line := n.ID
	if n.Version != "" {
		line += " " + n.Version
	}
	if len(n.Enabled) > 0 {
		line += " " + styleEnabled.Render("["+strings.Join(n.Enabled, ", ")+"]")
	}
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth+1), line)

	if seen[id] {
		return
	}
	seen[id] = true
	for _, child := range g.Children(id) {
		writeGraphNode(b, g, child, depth+1, seen)
	}
}
