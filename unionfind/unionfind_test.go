package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thorupsssp/unionfind"
)

func TestMakeSet_IsItsOwnRoot(t *testing.T) {
	f := unionfind.NewForest()
	n := f.MakeSet(42)

	require.Equal(t, n, unionfind.Find(n))
	require.Equal(t, 42, n.Item())
}

func TestUnion_MergesSets(t *testing.T) {
	f := unionfind.NewForest()
	a := f.MakeSet(0)
	b := f.MakeSet(1)

	require.NotEqual(t, unionfind.Find(a), unionfind.Find(b))

	unionfind.Union(a, b)

	require.Equal(t, unionfind.Find(a), unionfind.Find(b))
}

func TestUnion_Idempotent(t *testing.T) {
	f := unionfind.NewForest()
	a := f.MakeSet(0)
	b := f.MakeSet(1)

	r1 := unionfind.Union(a, b)
	r2 := unionfind.Union(a, b)

	require.Equal(t, r1, r2)
}

func TestUnion_ByLargerSizeWins(t *testing.T) {
	f := unionfind.NewForest()
	a := f.MakeSet(0)
	b := f.MakeSet(1)
	c := f.MakeSet(2)

	// grow {a,b} to size 2, then union with the singleton {c}: the larger
	// side's root must remain the overall root.
	bigRoot := unionfind.Union(a, b)
	finalRoot := unionfind.Union(bigRoot, c)

	require.Equal(t, bigRoot, finalRoot)
	require.Equal(t, finalRoot, unionfind.Find(c))
}

func TestFind_PathCompression(t *testing.T) {
	f := unionfind.NewForest()
	nodes := make([]*unionfind.Node, 8)
	for i := range nodes {
		nodes[i] = f.MakeSet(i)
	}

	for i := 1; i < len(nodes); i++ {
		unionfind.Union(nodes[0], nodes[i])
	}

	root := unionfind.Find(nodes[0])
	for _, n := range nodes {
		require.Equal(t, root, unionfind.Find(n))
	}
}
