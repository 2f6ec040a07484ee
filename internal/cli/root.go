package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev" // set via ldflags
	commit  string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the hamtour CLI under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree. The logger is attached to the command
// context in PersistentPreRun, at debug level with --verbose.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "hamtour",
		Short:         "hamtour orders images by perceptual similarity",
		Long:          `hamtour fingerprints images, connects them with a minimum spanning tree over Hamming distance, and walks the tree into a short path so that neighbouring files look alike.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(contextWithLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("hamtour %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newHashCmd())

	return root
}
