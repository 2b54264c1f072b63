package comptree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/comptree"
	"github.com/katalvlaran/thorupsssp/core"
)

func buildChainTree(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 4))

	return g
}

func TestBuild_LeavesMatchVertices(t *testing.T) {
	g := buildChainTree(t)

	tree, err := comptree.Build(g)
	require.NoError(t, err)
	require.Equal(t, 4, tree.NumVertices())

	for v := 0; v < 4; v++ {
		require.True(t, tree.Leaf(v).IsLeaf())
		require.Equal(t, v, tree.Leaf(v).Index)
	}
}

func TestBuild_RootIsAncestorOfEveryLeaf(t *testing.T) {
	g := buildChainTree(t)

	tree, err := comptree.Build(g)
	require.NoError(t, err)

	for v := 0; v < 4; v++ {
		n := tree.Leaf(v)
		for n.Parent != nil {
			n = n.Parent
		}
		require.Same(t, tree.Root(), n)
	}
}

func TestBuild_LevelsIncreaseFromLeafToRoot(t *testing.T) {
	g := buildChainTree(t)

	tree, err := comptree.Build(g)
	require.NoError(t, err)

	for v := 0; v < 4; v++ {
		n := tree.Leaf(v)
		last := n.Level
		for n.Parent != nil {
			n = n.Parent
			require.Greater(t, n.Level, last)
			last = n.Level
		}
	}
}

func TestBuild_InternalNodeDeltaIsPositive(t *testing.T) {
	g := buildChainTree(t)

	tree, err := comptree.Build(g)
	require.NoError(t, err)

	n := tree.Root()
	require.False(t, n.IsLeaf())
	require.Greater(t, n.Delta, 0)
}

func TestBuild_RootCountsAllLeavesAsUnvisited(t *testing.T) {
	g := buildChainTree(t)

	tree, err := comptree.Build(g)
	require.NoError(t, err)

	root := tree.Root()
	require.Equal(t, 4, root.NumUnvisitedVertices)
	require.Equal(t, 4, root.NumUnvisitedVerticesInitial)
}

func TestBuild_SingleVertex(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	tree, err := comptree.Build(g)
	require.NoError(t, err)
	require.True(t, tree.Root().IsLeaf())
}

func TestBuild_RejectsNonTree(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	_, err = comptree.Build(g)
	require.ErrorIs(t, err, comptree.ErrNotATree)
}

func TestBuild_NilGraph(t *testing.T) {
	_, err := comptree.Build(nil)
	require.ErrorIs(t, err, comptree.ErrNotATree)
}

func TestNode_BucketRoundTrip(t *testing.T) {
	g := buildChainTree(t)
	tree, err := comptree.Build(g)
	require.NoError(t, err)

	root := tree.Root()
	root.IX0, root.IX8 = 0, 2
	root.InitializeBuckets()

	child := root.Children[0]
	root.Bucket(child, 1)
	require.Equal(t, 1, root.GetBucket(1).Len())
	require.Same(t, child, root.GetBucket(1).Front().Value.(*comptree.Node))

	child.RemoveFromParentBucket()
	require.Equal(t, 0, root.GetBucket(1).Len())
}

func TestNode_BucketPanicsOnOutOfRangeIndex(t *testing.T) {
	g := buildChainTree(t)
	tree, err := comptree.Build(g)
	require.NoError(t, err)

	root := tree.Root()
	root.IX0, root.IX8 = 0, 2
	root.InitializeBuckets()

	require.Panics(t, func() {
		root.Bucket(root.Children[0], 5)
	})
}
