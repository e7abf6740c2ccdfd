package manchester_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodeadmin/alcgen/expr"
	"github.com/nodeadmin/alcgen/manchester"
)

func TestWriteTrivialConjunction(t *testing.T) {
	ast := expr.NewAnd(expr.NewAtom(1), expr.NewNot(expr.NewAtom(2)))
	var buf strings.Builder
	require.NoError(t, manchester.Write(&buf, "http://example.org/onto", ast))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Prefix: : <http://example.org/onto#>", lines[0])
	assert.Equal(t, "Ontology: <http://example.org/onto>", lines[1])
	assert.Equal(t, "Class: D", lines[2])
	assert.Equal(t, "EquivalentTo: (c1 and (not c2))", lines[3])
	assert.Contains(t, lines, "Class: c1")
	assert.Contains(t, lines, "Class: c2")
}

func TestWriteQuantifiersAndRoles(t *testing.T) {
	ast := expr.NewAnd(
		expr.NewAny(1, expr.NewAtom(2)),
		expr.NewAll(1, expr.NewAtom(3)),
	)
	var buf strings.Builder
	require.NoError(t, manchester.Write(&buf, "test", ast))
	out := buf.String()
	assert.Contains(t, out, "EquivalentTo: ((r1 some c2) and (r1 only c3))")
	assert.Contains(t, out, "ObjectProperty: r1")
}

func TestWriteTopIsThing(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, manchester.Write(&buf, "test", expr.NewTop()))
	assert.Contains(t, buf.String(), "EquivalentTo: Thing")
}
