package alcgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcgen"
	"github.com/nodeadmin/alcgen/expr"
	"github.com/nodeadmin/alcgen/guide"
)

type trivialGuide struct{}

func (trivialGuide) NConjuncts(depth int, universal bool) int { return 2 }
func (trivialGuide) NDisjuncts(depth int, universal bool) int { return 0 }
func (trivialGuide) ExistentialRoles(depth, currentRoleCount int, universal bool) []guide.RoleDepth {
	return nil
}
func (trivialGuide) UniversalRoles(depth int, existentialDepthsByRole map[int][]int, universal bool) []guide.RoleDepth {
	return nil
}

// Scenario 1: trivial depth-0 closed yields the conjunction of one atom and
// its own negation, e.g. AND(NOT(C2), C2), modulo ordering.
func TestCoordinatorGenerateTrivialClosed(t *testing.T) {
	c := alcgen.NewCoordinator(nil)
	ast, stats, err := c.Generate(0, trivialGuide{}, true, false)
	require.NoError(t, err)
	assert.True(t, stats.Closed)
	assert.Equal(t, expr.And, ast.Kind)

	hasAtom, hasNegatedAtom := false, false
	var walk func(e *expr.Expr)
	walk = func(e *expr.Expr) {
		if e.Kind == expr.Atom {
			if e.Lit > 0 {
				hasAtom = true
			} else {
				hasNegatedAtom = true
			}
		}
		if e.L != nil {
			walk(e.L)
		}
		if e.R != nil {
			walk(e.R)
		}
	}
	walk(ast)
	assert.True(t, hasAtom)
	assert.True(t, hasNegatedAtom)
}

type singleExistentialGuide struct{ once bool }

func (g *singleExistentialGuide) NConjuncts(depth int, universal bool) int { return 1 }
func (g *singleExistentialGuide) NDisjuncts(depth int, universal bool) int { return 0 }
func (g *singleExistentialGuide) ExistentialRoles(depth, currentRoleCount int, universal bool) []guide.RoleDepth {
	if depth == 0 || g.once {
		return nil
	}
	g.once = true
	return []guide.RoleDepth{{Role: 1, Depth: depth - 1}}
}
func (g *singleExistentialGuide) UniversalRoles(depth int, existentialDepthsByRole map[int][]int, universal bool) []guide.RoleDepth {
	return nil
}

// Scenario 2: depth-1 with a single ∃R.C has no linked/shared context, so
// closing must fail.
func TestCoordinatorGenerateUnclosableFails(t *testing.T) {
	c := alcgen.NewCoordinator(nil)
	_, _, err := c.Generate(1, &singleExistentialGuide{}, true, false)
	require.Error(t, err)
}

// minimize=true with close=false must still return a valid expression.
func TestCoordinatorGenerateMinimizeOnly(t *testing.T) {
	c := alcgen.NewCoordinator(nil)
	ast, stats, err := c.Generate(0, trivialGuide{}, false, true)
	require.NoError(t, err)
	assert.True(t, stats.Minimized)
	assert.NotNil(t, ast)
}
