package dedupe

import (
	"github.com/agext/levenshtein"
	"golang.org/x/sync/errgroup"
)

// minParallelCandidates is the sweep size below which fanning out to a
// worker group costs more than it saves.
const minParallelCandidates = 64

var levParams = levenshtein.NewParams()

// Similarity returns the normalized edit-distance ratio between two
// strings in [0,1]. Empty input never matches anything.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return levenshtein.Similarity(a, b, levParams)
}

// similarities scores every candidate against the anchor. Large sweeps
// are chunked across a bounded worker group; results land at disjoint
// indices so no locking is needed. Pass ordering stays sequential; only
// the pairwise comparisons inside a pass run concurrently.
func similarities(anchor string, candidates []string, workers int) []float64 {
	sims := make([]float64, len(candidates))

	if workers <= 1 || len(candidates) < minParallelCandidates {
		for i, c := range candidates {
			sims[i] = Similarity(anchor, c)
		}
		return sims
	}

	var g errgroup.Group
	g.SetLimit(workers)

	chunk := (len(candidates) + workers - 1) / workers
	for start := 0; start < len(candidates); start += chunk {
		start := start
		end := min(start+chunk, len(candidates))
		g.Go(func() error {
			for i := start; i < end; i++ {
				sims[i] = Similarity(anchor, candidates[i])
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return sims
}
