// Package minimize implements the structural non-equivalence constraint
// search and the two colouring strategies built on top of the co-occurrence
// DSU (spec component C7): the minimising mapping used after generation
// (and, optionally, after closing), and the non-closing negation
// introduction used as an alternative to the closing pass.
package minimize

import "github.com/nodeadmin/alcgen/skeleton"

// Constraint is a pair of atom-integer sets that must stay distinguishable
// after renaming: MergeConstraint keeps some element of Left and some
// element of Right in one DSU class, so those two receive different
// absolute values.
type Constraint struct {
	Left, Right map[int]struct{}
}

// NonequivalenceConstraints searches for the constraints that keep sibling
// subtrees a and b structurally distinguishable. It only descends when a
// and b have the same conjunct count, the same count of positive/negative
// atoms, and the same structural descriptor; the search prefers
// differentiating within universal restrictions, then existential
// restrictions, then falls back to the conjuncts at this level. When lazy
// is true, the search short-circuits immediately to the conjunct-level
// fallback instead of descending, trading precision for speed.
func NonequivalenceConstraints(a, b *skeleton.Node, lazy bool) []Constraint {
	if len(a.Conjuncts) != len(b.Conjuncts) {
		return nil
	}
	if countSigns(a.Conjuncts) != countSigns(b.Conjuncts) {
		return nil
	}
	if a.Descriptor() != b.Descriptor() {
		return nil
	}

	if !lazy {
		collections := []struct{ a, b map[int][]*skeleton.Node }{
			{a.Universal, b.Universal},
			{a.Existential, b.Existential},
		}
		for _, coll := range collections {
			result, ok := searchCollection(coll.a, coll.b, lazy)
			if !ok {
				continue
			}
			if len(result) > 0 {
				return result
			}
		}
	}

	return []Constraint{{Left: a.Conjuncts, Right: b.Conjuncts}}
}

type signCount struct{ pos, neg int }

func countSigns(set map[int]struct{}) signCount {
	var c signCount
	for v := range set {
		if v > 0 {
			c.pos++
		} else {
			c.neg++
		}
	}
	return c
}

// searchCollection ports the original's per-role pairing search: for each
// role on the a side, every node on the b side under the same role must be
// reachable via some non-empty constraint from some a-node, or the whole
// collection is rejected (ok=false) and the caller falls back to the next
// collection.
func searchCollection(acoll, bcoll map[int][]*skeleton.Node, lazy bool) ([]Constraint, bool) {
	var result []Constraint
	for r, anodes := range acoll {
		bnodes := bcoll[r]
		if len(anodes) != len(bnodes) {
			return nil, false
		}
		hits := make([]bool, len(bnodes))
		for j, y := range bnodes {
			for _, x := range anodes {
				req := NonequivalenceConstraints(x, y, lazy)
				if len(req) > 0 {
					result = append(result, req...)
					hits[j] = true
				}
			}
		}
		for _, h := range hits {
			if !h {
				return nil, false
			}
		}
	}
	return result, true
}

// ComputeConstraints walks n's existential and universal children,
// collecting a non-equivalence constraint for every pair of siblings under
// the same role (so that structurally identical siblings remain
// distinguishable after renaming), then recurses into each child.
func ComputeConstraints(n *skeleton.Node, lazy bool) []Constraint {
	var out []Constraint
	visit := func(byRole map[int][]*skeleton.Node) {
		for _, nodes := range byRole {
			for i, x := range nodes {
				for _, y := range nodes[i+1:] {
					out = append(out, NonequivalenceConstraints(x, y, lazy)...)
				}
				out = append(out, ComputeConstraints(x, lazy)...)
			}
		}
	}
	visit(n.Existential)
	visit(n.Universal)
	return out
}
