package minimize

import (
	"sort"

	"github.com/nodeadmin/alcgen/cooccur"
)

// MergeConstraint records into d that constraint's two sides must remain
// distinguishable: if the absolute values of Left and Right already share a
// class, the constraint is already satisfied and nothing changes; otherwise
// one representative from each side is unioned, forcing them into the same
// DSU class (and therefore distinct colors, by MinimizingMapping).
func MergeConstraint(d *cooccur.DSU, c Constraint) {
	left := absKeys(c.Left)
	right := absKeys(c.Right)
	if len(left) == 0 || len(right) == 0 {
		return
	}
	if d.HasNonEmptyIntersection(left, right) {
		return
	}
	d.Union(left[0], right[0])
}

func absKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		if v < 0 {
			v = -v
		}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// MinimizingMapping assigns each symbol known to d a dense positive integer
// color, per spec §4.6: within one DSU class, colors are assigned in
// ascending key order starting at 1 and incrementing, so two symbols in the
// same class (they co-occurred, or were forced apart by a constraint)
// always receive distinct colors; symbols in different classes are free to
// receive the same color.
func MinimizingMapping(d *cooccur.DSU) map[int]int {
	counters := map[int]int{}
	mapping := map[int]int{}
	for _, x := range d.Keys() {
		root := d.Find(x)
		counters[root]++
		mapping[x] = counters[root]
	}
	return mapping
}

// NonClosingMapping implements the alternative to closing used when the
// generator is run with close=false, minimize=true: it repeatedly takes two
// distinct classes of d (in deterministic order, by each class's smallest
// member), maps one class's representative to the negation of the other's,
// and unions the two classes, until only one class remains. This seeds some
// negations into the formula without requiring every leaf to close.
func NonClosingMapping(d *cooccur.DSU) map[int]int {
	mapping := map[int]int{}
	for {
		parts := d.Partition()
		if len(parts) < 2 {
			return mapping
		}
		reps := make([]int, 0, len(parts))
		for _, part := range parts {
			reps = append(reps, minKey(part))
		}
		sort.Ints(reps)
		a, b := reps[0], reps[1]
		mapping[a] = -b
		d.Union(a, b)
	}
}

func minKey(set map[int]struct{}) int {
	first := true
	min := 0
	for v := range set {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min
}
