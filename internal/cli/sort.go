package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamtour/config"
	"github.com/katalvlaran/hamtour/pipeline"
)

// sortOpts holds the command-line flags for the sort command. Only flags the
// user actually set override the configuration file.
type sortOpts struct {
	configPath string
	output     string
	hash       string
	mst        string
	workers    int
	refine     string
	timeLimit  time.Duration
	iters      int
	seed       int64
	hardlink   bool
	overwrite  bool
	dryRun     bool
	jobs       int
}

func newSortCmd() *cobra.Command {
	def := config.Default()
	opts := sortOpts{
		output:    def.Output,
		hash:      def.Hash,
		mst:       def.MST,
		refine:    def.Refine,
		timeLimit: def.TimeLimit.Duration,
		iters:     def.MaxIters,
	}

	cmd := &cobra.Command{
		Use:   "sort [dirs...]",
		Short: "Order the images below dirs and link them into an output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runSort(cmd, args, cfg, opts.dryRun)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "TOML or YAML configuration file (by extension)")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	f.StringVarP(&opts.hash, "func", "f", opts.hash, "hash function: ahash or dhash")
	f.StringVar(&opts.mst, "mst", opts.mst, "spanning tree method: prim, or kruskal (holds all n²/2 pairs, O(n²) memory)")
	f.IntVar(&opts.workers, "workers", 0, "prim scan goroutines (0 = all CPUs)")
	f.StringVar(&opts.refine, "refine", opts.refine, "tour refiner: swap or 2opt")
	f.DurationVar(&opts.timeLimit, "time", opts.timeLimit, "refinement time budget")
	f.IntVar(&opts.iters, "iters", opts.iters, "refinement iteration budget")
	f.Int64Var(&opts.seed, "seed", 0, "refinement random seed")
	f.BoolVar(&opts.hardlink, "hardlink", false, "create hard links instead of symlinks")
	f.BoolVar(&opts.overwrite, "overwrite", false, "replace existing entries in the output directory")
	f.BoolVar(&opts.dryRun, "dry-run", false, "compute the order without creating links")
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "hashing goroutines (0 = all CPUs)")

	return cmd
}

// resolve layers defaults, the config file and explicitly set flags.
func (o sortOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output = o.output
	}
	if set("func") {
		cfg.Hash = o.hash
	}
	if set("mst") {
		cfg.MST = o.mst
	}
	if set("workers") {
		cfg.Workers = o.workers
	}
	if set("refine") {
		cfg.Refine = o.refine
	}
	if set("time") {
		cfg.TimeLimit = config.Duration{Duration: o.timeLimit}
	}
	if set("iters") {
		cfg.MaxIters = o.iters
	}
	if set("seed") {
		cfg.Seed = o.seed
	}
	if set("hardlink") {
		cfg.Link = "symlink"
		if o.hardlink {
			cfg.Link = "hardlink"
		}
	}
	if set("overwrite") {
		cfg.Overwrite = o.overwrite
	}
	if set("jobs") {
		cfg.Concurrency = o.jobs
	}

	return cfg, cfg.Validate()
}

func runSort(cmd *cobra.Command, roots []string, cfg config.Config, dryRun bool) error {
	ctx := cmd.Context()
	logger := loggerFrom(ctx)
	sw := startStopwatch()

	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{Roots: roots, Config: cfg, DryRun: dryRun})
	if err != nil {
		return err
	}

	if dryRun {
		out := cmd.OutOrStdout()
		for k, p := range res.Ordered {
			fmt.Fprintf(out, "%d\t%s\n", k, p)
		}
	}
	sw.finish(logger, "sorted images",
		"count", len(res.Ordered),
		"initial_cost", res.Order.InitialCost,
		"cost", res.Order.Cost)

	return nil
}
