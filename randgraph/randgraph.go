package randgraph

import (
	"math/rand"

	"github.com/katalvlaran/thorupsssp/core"
)

// Generate builds a connected, weighted, undirected graph on n vertices.
// It first lays down the Hamiltonian path 0-1, 1-2, ..., (n-2)-(n-1),
// which alone guarantees the result is connected, then considers every
// remaining non-adjacent pair {i, j} (j >= i+2) and adds an edge between
// them with probability p. Every edge weight is drawn uniformly from
// [1, maxWeight].
//
// p defaults to 0 (just the Hamiltonian path) unless WithProbability or
// WithEdgesPerVertex is given. WithEdgesPerVertex(k) derives p from the
// desired average number of edges per vertex k via
// p = 2*(n*k - n + 1) / ((n-1)*(n-2)).
func Generate(n int, maxWeight int64, opts ...Option) (*core.Graph, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	if n < 2 || maxWeight < 1 {
		return g, nil
	}

	rng := rngFrom(cfg)

	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1, randomWeight(rng, maxWeight)); err != nil {
			return nil, err
		}
	}

	p := resolveProbability(cfg, n)
	if p <= 0 || n < 3 {
		return g, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(i, j, randomWeight(rng, maxWeight)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

func resolveProbability(cfg config, n int) float64 {
	if !cfg.useEdgesPerVertex {
		return cfg.probability
	}
	if n <= 2 {
		return 0
	}
	k := cfg.edgesPerVertex
	p := 2 * (float64(n)*k - float64(n) + 1) / (float64(n-1) * float64(n-2))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(1))
}

func randomWeight(rng *rand.Rand, maxWeight int64) int64 {
	return 1 + rng.Int63n(maxWeight)
}
