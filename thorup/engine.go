package thorup

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/thorupsssp/comptree"
	"github.com/katalvlaran/thorupsssp/core"
	"github.com/katalvlaran/thorupsssp/mst"
	"github.com/katalvlaran/thorupsssp/splitfindmin"
	"github.com/katalvlaran/thorupsssp/unvisited"
)

var (
	// ErrNilGraph is returned when ConstructMinimumSpanningTree is given a
	// nil graph.
	ErrNilGraph = errors.New("thorup: graph must not be nil")

	// ErrNotPrepared is returned when ConstructOtherDataStructures or
	// FindShortestPaths is called before the preceding preparation step
	// has completed.
	ErrNotPrepared = errors.New("thorup: engine is not prepared for this step")

	// ErrInvalidSource is returned by FindShortestPaths when the source
	// argument does not name a vertex of the prepared graph.
	ErrInvalidSource = errors.New("thorup: source is not a vertex of the graph")
)

// InvariantViolation is the panic value raised by comptree and
// splitfindmin when a structural invariant they rely on does not hold. It
// is never returned as an error: an occurrence means a bug in this module,
// not a condition a caller triggered.
type InvariantViolation = core.InvariantViolation

// rootShiftSentinel stands in for the level of the component tree root's
// (non-existent) parent. It is chosen larger than any real node level can
// reach, so that shifting by it collapses the top-level scan into a single
// pass over the root's own buckets, matching Thorup's convention of
// treating the root as if its parent had infinite level.
const rootShiftSentinel = 64

// Engine holds the state Thorup's algorithm needs to answer repeated
// single-source shortest paths queries against one fixed graph.
type Engine struct {
	g      *core.Graph
	n      int
	s      []bool
	msbMST *core.Graph
	tree   *comptree.Tree
	u      *unvisited.Structure
	source int
}

// NewEngine returns an unprepared Engine. Call
// ConstructMinimumSpanningTree and ConstructOtherDataStructures before
// FindShortestPaths.
func NewEngine() *Engine {
	return &Engine{}
}

// ConstructMinimumSpanningTree computes a msb-minimum spanning tree of g
// using algorithm, preparing the engine for ConstructOtherDataStructures.
func (e *Engine) ConstructMinimumSpanningTree(g *core.Graph, algorithm mst.Algorithm) error {
	if g == nil {
		return ErrNilGraph
	}

	tree, err := algorithm.FindMST(g)
	if err != nil {
		return err
	}

	e.g = g
	e.n = g.NumVertices()
	e.msbMST = tree

	log.WithField("vertices", e.n).Debug("thorup: computed msb-minimum spanning tree")

	return nil
}

// ConstructOtherDataStructures builds the component tree and the
// unvisited data structure FindShortestPaths runs on. It must be called
// once, after ConstructMinimumSpanningTree, before the first
// FindShortestPaths call.
func (e *Engine) ConstructOtherDataStructures() error {
	if e.msbMST == nil {
		return ErrNotPrepared
	}

	tree, err := comptree.Build(e.msbMST)
	if err != nil {
		return err
	}

	e.tree = tree
	e.s = make([]bool, e.n)
	e.u = unvisited.New(e.n, tree, splitfindmin.NewForUniverse(e.n, e.n))

	log.WithField("vertices", e.n).Debug("thorup: built component tree and unvisited structure")

	return nil
}

// CleanUpBetweenQueries resets the engine's visited-state so another
// FindShortestPaths call can run against the same prepared graph, without
// recomputing the msb-MST or the component tree.
func (e *Engine) CleanUpBetweenQueries() {
	e.s = make([]bool, e.n)
	e.tree.ResetVisited()
	e.u = unvisited.New(e.n, e.tree, splitfindmin.NewForUniverse(e.n, e.n))
}

// FindShortestPaths computes the distance from source to every vertex of
// the prepared graph.
func (e *Engine) FindShortestPaths(source int) ([]int64, error) {
	if e.tree == nil || e.u == nil {
		return nil, ErrNotPrepared
	}
	if source < 0 || source >= e.n {
		return nil, ErrInvalidSource
	}

	e.source = source
	e.s[source] = true

	for _, edge := range e.g.Neighbors(source) {
		e.u.DecreaseD(edge.To, edge.Weight)
	}

	if e.n > 1 {
		e.visitNode(e.tree.Root())
	}

	d := make([]int64, e.n)
	for v := 0; v < e.n; v++ {
		d[v] = e.u.D(v)
	}
	d[source] = 0

	return d, nil
}

// expand assumes v has just been visited for the first time. It buckets
// every child of v by its minimum unvisited super-distance, and removes v
// as a root of the unvisited data structure (Algorithm D).
func (e *Engine) expand(v *comptree.Node) {
	min := e.u.MinDMinus(v)
	v.IX0 = int(min) >> uint(v.Level-1)
	v.IX8 = v.IX0 + v.Delta

	v.InitializeBuckets()
	e.u.DeleteRoot(v)

	for _, wh := range v.Children {
		min := e.u.MinDMinus(wh)
		if min == -1 {
			continue
		}

		if !(wh.IsLeaf() && wh.Index == e.source) {
			// a child whose index lies beyond IX8 stays unbucketed until
			// visitLeaf lowers its distance into range.
			if index := int(min) >> uint(v.Level-1); index <= v.IX8 {
				v.Bucket(wh, index)
			}
			continue
		}

		for current := v; current != nil; current = current.Parent {
			current.NumUnvisitedVertices--
		}
	}

	v.Visited = true
}

// visitLeaf assumes every ancestor of vertex v is expanded. It marks v
// visited, relaxes its incident edges, and re-buckets any unvisited
// neighbor whose minimum super-distance just dropped into an earlier
// bucket (Algorithm E).
func (e *Engine) visitLeaf(v int) {
	if v == e.source {
		return
	}

	e.s[v] = true

	for _, edge := range e.g.Neighbors(v) {
		newDValue := core.SaturatingAdd64(e.u.D(v), edge.Weight)
		if newDValue <= 0 || newDValue >= e.u.D(edge.To) {
			continue
		}

		wh := e.u.RootAbove(e.tree, edge.To)
		wi := wh.Parent

		oldValue := e.u.MinDMinus(wh) >> uint(wi.Level-1)
		e.u.DecreaseD(edge.To, newDValue)
		newValue := e.u.MinDMinus(wh) >> uint(wi.Level-1)

		if (oldValue == -1 || newValue < oldValue) && int(newValue) <= wi.IX8 {
			wh.MoveToBucket(wi, int(newValue))
		}
	}
}

// visitNode assumes every ancestor of vi is expanded. If vi is a leaf, it
// visits the vertex directly; otherwise it assumes vi is minimal and
// scans its buckets in ascending order, expanding vi on first visit and
// recursing into every bucketed child, until vi runs out of unvisited
// vertices or its scan crosses into its parent's next bucket
// (Algorithm F).
func (e *Engine) visitNode(vi *comptree.Node) {
	vj := vi.Parent
	j := rootShiftSentinel
	if vj != nil {
		j = vj.Level
	}

	if vi.Level == 0 {
		e.visitLeaf(vi.Index)

		for current := vi.Parent; current != nil; current = current.Parent {
			current.NumUnvisitedVertices--
		}

		vi.RemoveFromParentBucket()

		return
	}

	if !vi.Visited {
		e.expand(vi)
		vi.IX = vi.IX0
	}

	oldShiftedIX := vi.IX >> uint(j-vi.Level)
	for vi.NumUnvisitedVertices > 0 && vi.IX>>uint(j-vi.Level) == oldShiftedIX {
		for vi.GetBucket(vi.IX).Len() > 0 {
			wh := vi.GetBucket(vi.IX).Front().Value.(*comptree.Node)
			e.visitNode(wh)
		}

		vi.IX++
	}

	if vi.NumUnvisitedVertices > 0 {
		vi.MoveToBucket(vj, vi.IX>>uint(j-vi.Level))
	} else if vi.Parent != nil {
		vi.RemoveFromParentBucket()
	}
}
