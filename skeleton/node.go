// Package skeleton implements the mutable rose-tree built during generation
// (spec C3): conjuncts, disjuncts, role-indexed existential/universal
// children, and the cross-links that propagate a universal restriction's
// conjuncts into the existential subtrees it constrains.
package skeleton

// Node is one skeleton tree node. A Node owns its Disjuncts, Existential,
// and Universal children exclusively; Linked is a non-owning back
// reference to a sibling universal restriction reachable from an
// existential restriction over the same role.
type Node struct {
	Conjuncts   map[int]struct{}
	Disjuncts   []*Node
	Existential map[int][]*Node
	Universal   map[int][]*Node
	Linked      []*Node

	descriptor    string
	hasDescriptor bool
}

// New returns an empty node (renders as ⊤ via ToAST).
func New() *Node {
	return &Node{
		Conjuncts:   make(map[int]struct{}),
		Existential: make(map[int][]*Node),
		Universal:   make(map[int][]*Node),
	}
}

func (n *Node) AddConjunct(c int) {
	n.Conjuncts[c] = struct{}{}
}

func (n *Node) AddDisjunct(child *Node) {
	n.Disjuncts = append(n.Disjuncts, child)
}

// AddExistential attaches child as an ∃r.child restriction. If r already
// has universal children, child is linked to each of them so the closing
// pass can propagate their conjuncts into child's leaves.
func (n *Node) AddExistential(r int, child *Node) {
	if existing, ok := n.Universal[r]; ok {
		for _, u := range existing {
			child.link(u)
		}
	}
	n.Existential[r] = append(n.Existential[r], child)
}

// AddUniversal attaches child as an ∀r.child restriction, linking it into
// every existing existential child over r.
func (n *Node) AddUniversal(r int, child *Node) {
	if existing, ok := n.Existential[r]; ok {
		for _, e := range existing {
			e.link(child)
		}
	}
	n.Universal[r] = append(n.Universal[r], child)
}

// link records that self's leaves should see other's conjuncts as
// "linked" context, then closes the link transitively: for every role r
// that other has a universal restriction over, and for every existential
// child self already has over r, that existential child is linked to
// other's universal children over r too.
func (self *Node) link(other *Node) {
	self.Linked = append(self.Linked, other)
	for r, unodes := range other.Universal {
		for _, enode := range self.Existential[r] {
			for _, u := range unodes {
				enode.link(u)
			}
		}
	}
}

// Depth is the longest path through any existential or universal child,
// plus one; 0 at a node with no quantified children (disjuncts do not add
// depth).
func (n *Node) Depth() int {
	d := 0
	for _, children := range n.Existential {
		for _, c := range children {
			if v := c.Depth() + 1; v > d {
				d = v
			}
		}
	}
	for _, children := range n.Universal {
		for _, c := range children {
			if v := c.Depth() + 1; v > d {
				d = v
			}
		}
	}
	return d
}

// allConjuncts is conjuncts ∪ linkedConjuncts(n).
func (n *Node) allConjuncts() map[int]struct{} {
	result := make(map[int]struct{}, len(n.Conjuncts))
	for c := range n.Conjuncts {
		result[c] = struct{}{}
	}
	for c := range n.linkedConjuncts() {
		result[c] = struct{}{}
	}
	return result
}

// linkedConjuncts is the union of allConjuncts(x) for every x in n.Linked.
func (n *Node) linkedConjuncts() map[int]struct{} {
	result := make(map[int]struct{})
	for _, x := range n.Linked {
		for c := range x.allConjuncts() {
			result[c] = struct{}{}
		}
	}
	return result
}

// Clone deep-copies n and everything it owns, preserving Linked references
// so they point into the clone rather than the original. Used by the
// dataset builder to derive independent open/open_minimized and
// closed/closed_minimized variants from a single generated skeleton without
// re-running the generator.
func (n *Node) Clone() *Node {
	seen := make(map[*Node]*Node)
	clone := n.cloneInto(seen)
	for orig, copy := range seen {
		for _, l := range orig.Linked {
			copy.Linked = append(copy.Linked, seen[l])
		}
	}
	return clone
}

func (n *Node) cloneInto(seen map[*Node]*Node) *Node {
	if existing, ok := seen[n]; ok {
		return existing
	}
	c := &Node{
		Conjuncts:   make(map[int]struct{}, len(n.Conjuncts)),
		Existential: make(map[int][]*Node, len(n.Existential)),
		Universal:   make(map[int][]*Node, len(n.Universal)),
	}
	seen[n] = c
	for v := range n.Conjuncts {
		c.Conjuncts[v] = struct{}{}
	}
	for _, d := range n.Disjuncts {
		c.Disjuncts = append(c.Disjuncts, d.cloneInto(seen))
	}
	for r, children := range n.Existential {
		for _, child := range children {
			c.Existential[r] = append(c.Existential[r], child.cloneInto(seen))
		}
	}
	for r, children := range n.Universal {
		for _, child := range children {
			c.Universal[r] = append(c.Universal[r], child.cloneInto(seen))
		}
	}
	return c
}

// ApplyMapping replaces every conjunct integer c with sign(c)*sigma[|c|]
// for every |c| present in sigma, recursing into owned children
// (disjuncts, existentials, universals) but never into Linked (which is a
// non-owning reference to a node mutated through its own owner).
func (n *Node) ApplyMapping(sigma map[int]int) {
	next := make(map[int]struct{}, len(n.Conjuncts))
	for c := range n.Conjuncts {
		abs, sign := c, 1
		if c < 0 {
			abs, sign = -c, -1
		}
		if v, ok := sigma[abs]; ok {
			next[sign*v] = struct{}{}
		} else {
			next[c] = struct{}{}
		}
	}
	n.Conjuncts = next
	for _, d := range n.Disjuncts {
		d.ApplyMapping(sigma)
	}
	for _, children := range n.Existential {
		for _, c := range children {
			c.ApplyMapping(sigma)
		}
	}
	for _, children := range n.Universal {
		for _, c := range children {
			c.ApplyMapping(sigma)
		}
	}
}
