package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/hamtour/config"
	"github.com/katalvlaran/hamtour/hamming"
	"github.com/katalvlaran/hamtour/phash"
	"github.com/katalvlaran/hamtour/sink"
	"github.com/katalvlaran/hamtour/walk"
)

// ErrNoRoots is returned when Execute is called without input directories.
var ErrNoRoots = errors.New("pipeline: no input directories")

// progressInterval spaces out hashing progress lines.
const progressInterval = 2 * time.Second

// Options configures one Execute call.
type Options struct {
	// Roots are the directories to search.
	Roots []string

	// Config carries method choices, budgets and the output location.
	Config config.Config

	// DryRun computes the order but creates no links.
	DryRun bool
}

// Result contains the outputs of a run.
type Result struct {
	// Paths[i] is the file behind item i.
	Paths []string

	// Skipped lists files that could not be decoded.
	Skipped []string

	// Items are the fingerprints, Items[i].Index == i.
	Items []hamming.Item

	// Ordered lists Paths in final order.
	Ordered []string

	Order OrderResult

	// Links is the number of entries created in the output directory.
	Links int

	Stats Stats
}

// Stats contains stage timings.
type Stats struct {
	Files     int
	WalkTime  time.Duration
	HashTime  time.Duration
	OrderTime time.Duration
	SinkTime  time.Duration
}

// Runner executes the pipeline. It holds no per-run state, so one Runner may
// serve concurrent Execute calls.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{Logger: logger}
}

// Execute runs walk → hash → order → sink.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Roots) == 0 {
		return nil, ErrNoRoots
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	method, err := phash.ParseMethod(cfg.Hash)
	if err != nil {
		return nil, err
	}
	orderOpts, err := OrderOptionsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	orderOpts.Refine.Ctx = ctx
	mode, err := sink.ParseMode(cfg.Link)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Walk
	start := time.Now()
	files, err := walk.Walk(ctx, opts.Roots, walk.WithExtensions(cfg.Extensions...))
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	result.Stats.Files = len(files)
	result.Stats.WalkTime = time.Since(start)
	r.Logger.Info("discovered images", "files", len(files), "roots", len(opts.Roots), "duration", result.Stats.WalkTime)

	// Stage 2: Hash
	start = time.Now()
	if err = r.fingerprint(ctx, files, method, cfg.Concurrency, result); err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}
	result.Stats.HashTime = time.Since(start)
	r.Logger.Info("fingerprinted images",
		"method", method,
		"items", len(result.Items),
		"skipped", len(result.Skipped),
		"duration", result.Stats.HashTime)

	// Stage 3: Order
	start = time.Now()
	result.Order, err = Order(result.Items, orderOpts)
	if err != nil {
		return nil, fmt.Errorf("order: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	result.Stats.OrderTime = time.Since(start)
	result.Ordered = make([]string, len(result.Order.Order))
	for k, id := range result.Order.Order {
		result.Ordered[k] = result.Paths[id]
	}
	r.Logger.Info("ordered images",
		"mst", orderOpts.MST.Method,
		"tree_weight", result.Order.TreeWeight,
		"initial_cost", result.Order.InitialCost,
		"cost", result.Order.Cost,
		"duration", result.Stats.OrderTime)
	r.Logger.Debug("refinement",
		"algo", orderOpts.Refine.Algo,
		"iterations", result.Order.Refine.Iterations,
		"accepted", result.Order.Refine.Accepted,
		"stopped", result.Order.Refine.Stopped)

	if opts.DryRun {
		r.Logger.Info("dry run, no links created", "output", cfg.Output)
		return result, nil
	}

	// Stage 4: Sink
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	result.Links, err = sink.Materialize(ctx, result.Order.Order, result.Paths, cfg.Output,
		sink.WithMode(mode), sink.WithOverwrite(cfg.Overwrite))
	if err != nil {
		return result, fmt.Errorf("sink: %w", err)
	}
	result.Stats.SinkTime = time.Since(start)
	r.Logger.Info("linked images", "mode", mode, "links", result.Links, "output", cfg.Output, "duration", result.Stats.SinkTime)

	return result, nil
}

// fingerprint hashes files with at most workers goroutines and fills
// result.Paths, result.Items and result.Skipped in discovery order.
func (r *Runner) fingerprint(ctx context.Context, files []string, method phash.Method, workers int, result *Result) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	codes := make([]uint64, len(files))
	ok := make([]bool, len(files))
	var done atomic.Int64
	progress := rate.Sometimes{Interval: progressInterval}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := phash.FingerprintFile(path, method)
			if err != nil {
				r.Logger.Warn("skipping file", "path", path, "err", err)
			} else {
				codes[i], ok[i] = h, true
			}
			n := done.Add(1)
			progress.Do(func() {
				r.Logger.Info("hashing", "done", n, "total", len(files))
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, path := range files {
		if !ok[i] {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		result.Items = append(result.Items, hamming.Item{Index: len(result.Paths), Fingerprint: codes[i]})
		result.Paths = append(result.Paths, path)
		r.Logger.Debug("hashed", "path", path, "fingerprint", fmt.Sprintf("%016x", codes[i]))
	}

	return nil
}
