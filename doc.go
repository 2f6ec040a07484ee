// Package hamtour orders 64-bit fingerprints so that consecutive items are
// close in Hamming distance, and applies that ordering to image collections.
//
// The ordering is built in three steps:
//
//	fingerprints ──► spanning tree ──► preorder path ──► refined path
//	  (hamming)      (prim_kruskal)       (dfs)              (tsp)
//
// Because Hamming distance is a metric, the preorder of a minimum spanning tree
// costs at most twice the tree weight; the refiner then only accepts moves
// that lower the cost, within a wall-clock and an iteration budget.
//
// Packages:
//
//	hamming/      - Item, Distance and path cost
//	core/         - rooted spanning-tree arena with validation
//	prim_kruskal/ - union-find Kruskal and parallel frontier Prim
//	dfs/          - iterative preorder linearizer with an explicit frame stack
//	tsp/          - random-swap and 2-opt path refiners
//	builder/      - synthetic fingerprint sets for tests and benchmarks
//	walk/         - breadth-first image discovery
//	phash/        - average and difference hashes of images
//	sink/         - numbered symlinks or hard links in an output directory
//	config/       - TOML/YAML settings
//	pipeline/     - walk → hash → order → sink, with logging
//	cmd/hamtour   - the command-line tool
//
// Quick example:
//
//	items := hamming.Items(0x00, 0x01, 0x03, 0xFF)
//	res, _ := pipeline.Order(items, pipeline.DefaultOrderOptions())
//	fmt.Println(res.Order, res.Cost) // [0 1 2 3] 8
package hamtour
