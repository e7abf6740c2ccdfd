package cooccur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestUnionFindBasic(t *testing.T) {
	d := New()
	d.Union(1, 2)
	d.Union(2, 3)
	assert.Equal(t, d.Find(1), d.Find(3))
	assert.NotEqual(t, d.Find(1), d.Find(4))
}

func TestHasNonEmptyIntersectionSymmetric(t *testing.T) {
	d := New()
	d.Union(1, 2)
	d.Union(3, 4)
	assert.True(t, d.HasNonEmptyIntersection([]int{1}, []int{2}))
	assert.True(t, d.HasNonEmptyIntersection([]int{2}, []int{1}))
	assert.False(t, d.HasNonEmptyIntersection([]int{1}, []int{3}))
	assert.False(t, d.HasNonEmptyIntersection([]int{99}, []int{1}))
}

func TestMaxKey(t *testing.T) {
	d := New()
	d.Union(5, 1)
	d.Union(2, 9)
	assert.Equal(t, 9, d.MaxKey())
}

func TestUnionIdempotentAndCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfDistinct(rapid.IntRange(0, 20), func(i int) int { return i }).Draw(t, "keys")
		if len(keys) < 2 {
			return
		}
		a, b := New(), New()
		a.Union(keys[0], keys[1])
		a.Union(keys[0], keys[1]) // idempotent: repeating should not change partition
		b.Union(keys[1], keys[0]) // commutative: order shouldn't matter
		assert.Equal(t, a.Find(keys[0]) == a.Find(keys[1]), b.Find(keys[0]) == b.Find(keys[1]))
	})
}

func TestHasNonEmptyIntersectionPropertySymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := New()
		pairs := rapid.SliceOfN(rapid.ArrayOf(2, rapid.IntRange(0, 10)), 0, 10).Draw(t, "pairs")
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
		xs := rapid.SliceOfN(rapid.IntRange(0, 10), 0, 5).Draw(t, "xs")
		ys := rapid.SliceOfN(rapid.IntRange(0, 10), 0, 5).Draw(t, "ys")
		assert.Equal(t, d.HasNonEmptyIntersection(xs, ys), d.HasNonEmptyIntersection(ys, xs))
	})
}
