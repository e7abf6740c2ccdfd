package closing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcgen/closing"
	"github.com/nodeadmin/alcgen/skeleton"
)

// Scenario 1: trivial depth-0 closed.
func TestCloseTrivialTwoConjuncts(t *testing.T) {
	root := skeleton.New()
	root.AddConjunct(1)
	root.AddConjunct(2)

	mapping, err := closing.Close(root.Leaves())
	require.NoError(t, err)
	require.Len(t, mapping, 1)

	for k, v := range mapping {
		other := 1
		if k == 1 {
			other = 2
		}
		assert.Equal(t, -other, v)
	}
}

// Scenario 2: depth-1 with a single ∃R.C and no universal cannot close.
func TestCloseSingleExistentialFails(t *testing.T) {
	root := skeleton.New()
	root.AddConjunct(1)
	e := skeleton.New()
	e.AddConjunct(2)
	root.AddExistential(1, e)

	_, err := closing.Close(root.Leaves())
	require.ErrorIs(t, err, closing.ErrClosingFailed)
}

// Scenario 3: depth-1 closable via universal linking.
func TestCloseViaUniversalLink(t *testing.T) {
	root := skeleton.New()
	root.AddConjunct(1)
	e := skeleton.New()
	e.AddConjunct(2)
	root.AddExistential(1, e)
	u := skeleton.New()
	u.AddConjunct(3)
	root.AddUniversal(1, u)

	mapping, err := closing.Close(root.Leaves())
	require.NoError(t, err)
	require.Contains(t, mapping, 2)
	assert.Equal(t, -3, mapping[2])
}

// Scenario 5: disjunction with shared context.
func TestCloseDisjunctionUsesSharedContext(t *testing.T) {
	root := skeleton.New()
	root.AddConjunct(1)
	root.AddConjunct(2)
	d1 := skeleton.New()
	d1.AddConjunct(3)
	d2 := skeleton.New()
	d2.AddConjunct(4)
	root.AddDisjunct(d1)
	root.AddDisjunct(d2)

	mapping, err := closing.Close(root.Leaves())
	require.NoError(t, err)
	require.Contains(t, mapping, 3)
	require.Contains(t, mapping, 4)
	assert.Contains(t, []int{-1, -2}, mapping[3])
	assert.Contains(t, []int{-1, -2}, mapping[4])
}

// Scenario 6 (closing half): large fan-out with no universals/shared
// context cannot be closed.
func TestCloseLargeFanOutFails(t *testing.T) {
	root := skeleton.New()
	for i := 0; i < 10; i++ {
		e := skeleton.New()
		e.AddConjunct(100 + i)
		root.AddExistential(1, e)
	}

	_, err := closing.Close(root.Leaves())
	require.ErrorIs(t, err, closing.ErrClosingFailed)
}

func TestCloseSoundnessEveryLeafGetsContradiction(t *testing.T) {
	root := skeleton.New()
	root.AddConjunct(1)
	root.AddConjunct(2)
	e := skeleton.New()
	e.AddConjunct(3)
	root.AddExistential(1, e)
	u := skeleton.New()
	u.AddConjunct(4)
	root.AddUniversal(1, u)

	mapping, err := closing.Close(root.Leaves())
	require.NoError(t, err)

	root.ApplyMapping(mapping)
	e2 := root.Existential[1][0]
	hasContradiction := false
	for a := range e2.Conjuncts {
		if _, ok := e2.Conjuncts[-a]; ok {
			hasContradiction = true
		}
		for _, l := range e2.Linked {
			if _, ok := l.Conjuncts[-a]; ok {
				hasContradiction = true
			}
		}
	}
	assert.True(t, hasContradiction)
}
