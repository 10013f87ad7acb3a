package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featgate/featgate/pkg/depgraph"
	"github.com/featgate/featgate/pkg/errors"
	"github.com/featgate/featgate/pkg/features"
	"github.com/featgate/featgate/pkg/manifest"
)

// newCheckCmd creates the check command, which validates the manifest's
// feature and dependency configuration without producing output artifacts.
func newCheckCmd() *cobra.Command {
	var depsDir string

	cmd := &cobra.Command{
		Use:   "check [manifest]",
		Short: "Validate the manifest's feature and dependency configuration",
		Long: `Validate feature declarations, dependency feature requests, and
only_features gates across the whole dependency tree.

Configuration errors are fatal and reported with their error code; overlap and
undeclared-feature findings are collected and printed as warnings.

Examples:
  featgate check
  featgate check path/to/featgate.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := manifest.Load(manifestArg(args))
			if err != nil {
				return err
			}

			rep := &features.Collector{}
			g, err := depgraph.Build(m, depgraph.Options{
				Loader:   manifest.DirLoader{Root: resolveDepsDir(m.Path(), depsDir)},
				Reporter: rep,
			})
			if err != nil {
				if code := errors.GetCode(err); code != "" {
					logger.Errorf("%s: %s", code, errors.UserMessage(err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), styleError.Render("configuration invalid"))
				return err
			}

			for _, w := range rep.Warnings {
				logger.Warn(w.String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration valid: %d packages, %d warnings\n",
				g.NodeCount(), len(rep.Warnings))
			return nil
		},
	}

	cmd.Flags().StringVar(&depsDir, "deps-dir", "deps", "directory with vendored dependency manifests")
	return cmd
}
