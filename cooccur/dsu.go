// Package cooccur implements a disjoint-set union over integer symbols,
// used to track which class-expression atoms must remain distinct ("have
// co-occurred") across the minimisation pass.
package cooccur

import "sort"

// DSU is a union-find structure with path compression and union by rank,
// with lazy insertion: the first reference to a key creates a singleton
// class for it. Amortised complexity is inverse-Ackermann per operation.
type DSU struct {
	parent map[int]int
	rank   map[int]int
}

// New returns an empty DSU.
func New() *DSU {
	return &DSU{parent: make(map[int]int), rank: make(map[int]int)}
}

// Find returns the representative of x's class, inserting x as a new
// singleton if it has not been seen before.
func (d *DSU) Find(x int) int {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
		d.rank[x] = 0
		return x
	}
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the classes of x and y.
func (d *DSU) Union(x, y int) {
	d.UnionMany([]int{x, y})
}

// UnionMany merges the classes of all given elements into one.
func (d *DSU) UnionMany(items []int) {
	if len(items) == 0 {
		return
	}
	y := d.Find(items[0])
	ry := d.rank[y]
	for _, raw := range items[1:] {
		x := d.Find(raw)
		if x == y {
			continue
		}
		rx := d.rank[x]
		switch {
		case rx < ry:
			x, y = y, x
		case rx == ry:
			d.rank[x]++
			ry = rx + 1
		default:
			ry = rx
		}
		d.parent[y] = x
		y = x
	}
}

// Partition returns the current partition as a list of sets, one per class.
func (d *DSU) Partition() []map[int]struct{} {
	groups := make(map[int]map[int]struct{})
	for x := range d.parent {
		root := d.Find(x)
		g, ok := groups[root]
		if !ok {
			g = make(map[int]struct{})
			groups[root] = g
		}
		g[x] = struct{}{}
	}
	result := make([]map[int]struct{}, 0, len(groups))
	for _, g := range groups {
		result = append(result, g)
	}
	return result
}

// HasNonEmptyIntersection reports whether some element of xs and some
// element of ys belong to the same class. Elements not yet seen are
// ignored (they are not inserted as a side effect).
func (d *DSU) HasNonEmptyIntersection(xs, ys []int) bool {
	roots := make(map[int]struct{}, len(ys))
	for _, y := range ys {
		r, ok := d.peek(y)
		if !ok {
			continue
		}
		roots[r] = struct{}{}
	}
	for _, x := range xs {
		r, ok := d.peek(x)
		if !ok {
			continue
		}
		if _, found := roots[r]; found {
			return true
		}
	}
	return false
}

// peek finds x's root without inserting x if it is unseen.
func (d *DSU) peek(x int) (int, bool) {
	if _, ok := d.parent[x]; !ok {
		return 0, false
	}
	return d.Find(x), true
}

// Keys returns every key the DSU has seen, sorted ascending, for callers
// that need a deterministic full iteration order (e.g. the minimisation
// pass assigning colors class by class).
func (d *DSU) Keys() []int {
	out := make([]int, 0, len(d.parent))
	for x := range d.parent {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}

// MaxKey returns the largest key ever inserted, for sizing output tables.
// Panics if the DSU is empty, matching the original's unconditional max().
func (d *DSU) MaxKey() int {
	first := true
	max := 0
	for x := range d.parent {
		if first || x > max {
			max = x
			first = false
		}
	}
	if first {
		panic("cooccur: MaxKey: empty DSU")
	}
	return max
}
