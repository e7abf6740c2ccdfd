// Package closing implements the backtracking negation-assignment pass
// (spec component C6): it walks a skeleton.LeafTree and tries to make every
// conjunctive path unsatisfiable by mapping one atom per leaf to the
// negation of another atom that also occurs at that leaf (directly, via a
// universal link, or via an enclosing disjunction), reusing negated atoms
// across leaves when possible to keep the minimization pass (package
// minimize) effective afterwards.
package closing

import (
	"github.com/pkg/errors"

	"github.com/nodeadmin/alcgen/skeleton"
)

// ErrClosingFailed is returned when no assignment of negations can make
// every required leaf unsatisfiable.
var ErrClosingFailed = errors.New("closing: cannot fully close the formula")

// Close computes a symbol mapping that, applied via skeleton.Node's
// ApplyMapping, makes every conjunctive path through n unsatisfiable: some
// atom in every required leaf is mapped to the negation of a co-occurring
// atom. The search order over OR/AND nodes follows spec §4.5: an OR node
// requires every child to close (any one path being satisfiable makes the
// whole disjunction satisfiable), an AND node requires only one child to
// close and, as a heuristic, tries only its children of maximum depth, in
// order; shallower children are never tried.
func Close(tree *skeleton.LeafTree) (map[int]int, error) {
	c := &closer{mapping: map[int]int{}, used: map[int]int{}}
	if !c.helper(tree) {
		return nil, ErrClosingFailed
	}
	return c.mapping, nil
}

type closer struct {
	mapping map[int]int
	used    map[int]int
}

func (c *closer) helper(t *skeleton.LeafTree) bool {
	switch t.Op {
	case skeleton.LeafOpOr:
		for _, child := range t.Children {
			if !c.helper(child) {
				return false
			}
		}
		return true

	case skeleton.LeafOpAnd:
		maxDepth := 0
		for i, child := range t.Children {
			if i == 0 || child.Depth > maxDepth {
				maxDepth = child.Depth
			}
		}
		for _, child := range t.Children {
			if child.Depth == maxDepth && c.helper(child) {
				return true
			}
		}
		return false

	default:
		return c.closeLeaf(t.Leaf)
	}
}

func (c *closer) closeLeaf(leaf *skeleton.Leaf) bool {
	for atom := range leaf.Atoms {
		if _, ok := c.mapping[atom]; ok {
			return true
		}
	}

	if len(leaf.Atoms) == 0 {
		return false
	}
	var pivot int
	for atom := range leaf.Atoms {
		pivot = atom
		break
	}

	best, ok := c.pickPartner(leaf.Linked, leaf.Shared)
	if !ok {
		best, ok = c.pickPartner(subtractAtom(leaf.Atoms, pivot), nil)
	}
	if !ok {
		return false
	}

	c.used[best]++
	c.mapping[pivot] = -best
	return true
}

// pickPartner chooses the least-used candidate across both sets, favoring
// an unused candidate (used == 0) as soon as one is found, matching the
// grounded original's early-break-on-zero-use heuristic.
func (c *closer) pickPartner(a, b map[int]struct{}) (int, bool) {
	best := 0
	found := false
	consider := func(candidate int) bool {
		if !found || c.used[best] > c.used[candidate] {
			best = candidate
			found = true
			if c.used[best] == 0 {
				return true
			}
		}
		return false
	}
	for candidate := range a {
		if consider(candidate) {
			return best, true
		}
	}
	for candidate := range b {
		if consider(candidate) {
			return best, true
		}
	}
	return best, found
}

func subtractAtom(set map[int]struct{}, exclude int) map[int]struct{} {
	out := make(map[int]struct{}, len(set))
	for a := range set {
		if a != exclude {
			out[a] = struct{}{}
		}
	}
	return out
}
