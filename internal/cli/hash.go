package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamtour/phash"
)

func newHashCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "Print perceptual fingerprints",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := phash.ParseMethod(method)
			if err != nil {
				return err
			}
			logger := loggerFrom(cmd.Context())
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				h, err := phash.FingerprintFile(path, m)
				if err != nil {
					logger.Warn("cannot hash", "path", path, "err", err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%016x  %s\n", h, path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be hashed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "func", "f", "ahash", "hash function: ahash or dhash")

	return cmd
}
