// Package pipeline wires discovery, fingerprinting, ordering and
// materialisation into one run.
//
// # Stages
//
//  1. Walk: collect image files below the input roots (package walk).
//  2. Hash: fingerprint every file in parallel (package phash); files that fail
//     to decode are skipped with a warning.
//  3. Order: build a minimum spanning tree over the fingerprints, linearise it
//     by preorder, then refine the path under a time and iteration budget.
//  4. Sink: link the files into the output directory as 0.ext, 1.ext, ...
//
// Order is usable on its own for callers that already hold fingerprints:
//
//	res, err := pipeline.Order(items, pipeline.DefaultOrderOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Order, res.InitialCost, "→", res.Cost)
//
// Runner.Execute runs all four stages and logs each one through
// charmbracelet/log.
package pipeline
