package skeleton

import "github.com/nodeadmin/alcgen/cooccur"

// Cooccurrences performs the depth-first walk described in spec §4.3,
// gathering the absolute values of conjuncts that are asserted together
// (co-occur) for the same individual, and unions each such batch in the
// returned DSU. A disjunct's own batch is merged into its enclosing node's
// batch (both describe the same individual along that branch); an
// existential child starts a fresh individual, so its batches are kept
// separate; a universal child's own top-level batch is skipped (those
// atoms already reach the co-occurrence graph through the `linked`
// existential sibling they constrain) but its deeper descendants'
// batches are kept, matching the grounded original's
// "ignore the top-level in universals, it is handled elsewhere".
func (n *Node) Cooccurrences() *cooccur.DSU {
	d := cooccur.New()
	for _, batch := range n.symbolBatches() {
		if len(batch) > 0 {
			d.UnionMany(batch)
		}
	}
	return d
}

// symbolBatches returns one batch per conjunctive context reachable from
// n, in the same shape as the original's symbols(): index 0 is n's own
// batch (possibly merged with its disjuncts' own batches).
func (n *Node) symbolBatches() [][]int {
	batches := [][]int{absInts(n.allConjuncts())}

	for _, r := range sortedRoles(n.Existential) {
		for _, e := range n.Existential[r] {
			batches = append(batches, e.symbolBatches()...)
		}
	}
	for _, r := range sortedRoles(n.Universal) {
		for _, u := range n.Universal[r] {
			sub := u.symbolBatches()
			if len(sub) > 1 {
				batches = append(batches, sub[1:]...)
			}
		}
	}
	for _, d := range n.Disjuncts {
		sub := d.symbolBatches()
		batches[0] = append(batches[0], sub[0]...)
		if len(sub) > 1 {
			batches = append(batches, sub[1:]...)
		}
	}
	return batches
}

func absInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		if v < 0 {
			v = -v
		}
		out = append(out, v)
	}
	return out
}
