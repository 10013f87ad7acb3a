package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/featgate/featgate/pkg/features"
	"github.com/featgate/featgate/pkg/manifest"
)

// newFeaturesCmd creates the features command, which reports every declared
// feature with its resolved enabled/disabled state.
func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features [manifest]",
		Short: "Report each declared feature with its enabled/disabled state",
		Long: `Report the project's resolved feature state.

Features are listed sorted by name with their static enabled/disabled state,
exactly as the code-selection stage will see them. Overlapping default/optional
declarations are reported as warnings; the feature stays enabled.

Examples:
  featgate features                  # ./featgate.toml
  featgate features path/to/featgate.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := manifest.Load(manifestArg(args))
			if err != nil {
				return err
			}

			state, err := m.FeatureState(warnReporter(logger))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderFeatureReport(m.Name(), state))
			return nil
		},
	}
}

// manifestArg returns the manifest path from the command arguments,
// defaulting to featgate.toml in the working directory.
func manifestArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return manifest.Filename
}

// renderFeatureReport formats the feature state as a sorted, aligned listing.
func renderFeatureReport(unit string, state *features.State) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Features for %s", unit)))
	b.WriteString("\n\n")

	declared := state.DeclaredNames()
	if len(declared) == 0 {
		b.WriteString("  no features declared\n")
		return b.String()
	}

	width := 0
	for _, name := range declared {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range declared {
		status := styleDisabled.Render("disabled")
		if state.IsEnabled(name) {
			status = styleEnabled.Render("enabled")
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, status)
	}
	return b.String()
}
