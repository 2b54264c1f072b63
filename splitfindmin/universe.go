package splitfindmin

import "github.com/katalvlaran/thorupsssp/ackermann"

// NewForUniverse builds a fresh, top-level split-findmin structure for
// processing a universe of n elements, expecting up to m DecreaseCost
// calls over its lifetime. It builds its own ackermann.Table sized for n
// and picks the coarsest level for which that table still supports m
// decreases over n elements.
func NewForUniverse(n, m int) *Structure {
	ack := ackermann.NewTable(n)
	level := ack.Inverse(m, n)

	return NewStructure(ack, level)
}
