package pipeline

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hamtour/config"
	"github.com/katalvlaran/hamtour/dfs"
	"github.com/katalvlaran/hamtour/hamming"
	"github.com/katalvlaran/hamtour/prim_kruskal"
	"github.com/katalvlaran/hamtour/tsp"
)

// OrderOptions configures the build, linearise and refine stages.
type OrderOptions struct {
	MST    prim_kruskal.MSTOptions
	Refine tsp.Options
}

// DefaultOrderOptions returns Kruskal plus the default swap refiner.
func DefaultOrderOptions() OrderOptions {
	return OrderOptions{
		MST:    prim_kruskal.DefaultOptions(),
		Refine: tsp.DefaultOptions(),
	}
}

// OrderOptionsFromConfig maps the ordering fields of cfg.
func OrderOptionsFromConfig(cfg config.Config) (OrderOptions, error) {
	algo, err := tsp.ParseAlgo(cfg.Refine)
	if err != nil {
		return OrderOptions{}, err
	}

	o := DefaultOrderOptions()
	o.MST.Method = cfg.MST
	if cfg.Workers > 0 {
		o.MST.Workers = cfg.Workers
	}
	o.Refine.Algo = algo
	o.Refine.MaxIters = cfg.MaxIters
	o.Refine.TimeLimit = cfg.TimeLimit.Duration
	o.Refine.Seed = cfg.Seed

	return o, o.MST.Validate()
}

// OrderResult is the outcome of Order.
type OrderResult struct {
	// Order[k] is the item id placed at position k.
	Order []int

	// TreeWeight is the total weight of the spanning tree.
	TreeWeight int64

	// InitialCost is the path cost of the preorder, Cost after refinement.
	InitialCost int64
	Cost        int64

	// Refine reports the refiner's counters and stop reason.
	Refine tsp.Result

	BuildTime     time.Duration
	LinearizeTime time.Duration
	RefineTime    time.Duration
}

// Order computes a low-cost visiting order of items.
//
// Steps:
//  1. Fewer than two items: return the identity order.
//  2. Build the spanning tree with opts.MST.
//  3. Linearise it by preorder from vertex 0.
//  4. Refine the path in place with opts.Refine.
//
// Returns prim_kruskal or tsp option errors unchanged.
func Order(items []hamming.Item, opts OrderOptions) (OrderResult, error) {
	if len(items) < 2 {
		return OrderResult{Order: tsp.Identity(len(items))}, nil
	}

	var res OrderResult
	start := time.Now()
	tree, ok, err := prim_kruskal.Compute(items, opts.MST)
	if err != nil {
		return OrderResult{}, err
	}
	if !ok {
		return OrderResult{}, fmt.Errorf("pipeline: no spanning tree for %d items", len(items))
	}
	res.BuildTime = time.Since(start)
	res.TreeWeight = tree.Weight()

	start = time.Now()
	res.Order = dfs.Preorder(tree)
	res.LinearizeTime = time.Since(start)

	start = time.Now()
	res.Refine, err = tsp.Refine(items, res.Order, opts.Refine)
	if err != nil {
		return OrderResult{}, err
	}
	res.RefineTime = time.Since(start)
	res.InitialCost = res.Refine.InitialCost
	res.Cost = res.Refine.Cost

	return res, nil
}
