// Package manchester serializes a class expression tree (package expr) to
// Manchester OWL syntax, the external interface described in spec §6.
package manchester

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/nodeadmin/alcgen/expr"
)

// Write renders ast as the declared class D under prefix, bit-exact per
// spec §6: a Prefix/Ontology header, the single EquivalentTo axiom for D,
// then one Class: line per atomic class referenced and one
// ObjectProperty: line per role referenced, each auxiliary declaration
// order left unspecified (emitted in ascending id order here, for
// reproducible output).
func Write(w io.Writer, prefix string, ast *expr.Expr) error {
	bw := bufio.NewWriterSize(w, 4096)

	classes, roles := collectSymbols(ast)

	lines := []string{
		fmt.Sprintf("Prefix: : <%s#>", prefix),
		fmt.Sprintf("Ontology: <%s>", prefix),
		"Class: D",
		fmt.Sprintf("EquivalentTo: %s", serialize(ast)),
	}
	for _, c := range classes {
		lines = append(lines, fmt.Sprintf("Class: c%d", c))
	}
	for _, r := range roles {
		lines = append(lines, fmt.Sprintf("ObjectProperty: r%d", r))
	}

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(err, "manchester: write line")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "manchester: write newline")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "manchester: flush")
	}
	return nil
}

func serialize(e *expr.Expr) string {
	switch e.Kind {
	case expr.Top:
		return "Thing"
	case expr.Bottom:
		return "Nothing"
	case expr.Atom:
		if e.Lit < 0 {
			return fmt.Sprintf("(not c%d)", -e.Lit)
		}
		return fmt.Sprintf("c%d", e.Lit)
	case expr.Not:
		return fmt.Sprintf("(not %s)", serialize(e.L))
	case expr.And:
		return fmt.Sprintf("(%s and %s)", serialize(e.L), serialize(e.R))
	case expr.Or:
		return fmt.Sprintf("(%s or %s)", serialize(e.L), serialize(e.R))
	case expr.Any:
		return fmt.Sprintf("(r%d some %s)", e.Role, serialize(e.L))
	case expr.All:
		return fmt.Sprintf("(r%d only %s)", e.Role, serialize(e.L))
	default:
		panic(fmt.Sprintf("manchester: unhandled expr kind %d", e.Kind))
	}
}

func collectSymbols(e *expr.Expr) (classes, roles []int) {
	classSet := map[int]struct{}{}
	roleSet := map[int]struct{}{}
	var walk func(e *expr.Expr)
	walk = func(e *expr.Expr) {
		switch e.Kind {
		case expr.Atom:
			lit := e.Lit
			if lit < 0 {
				lit = -lit
			}
			classSet[lit] = struct{}{}
		case expr.Any, expr.All:
			roleSet[e.Role] = struct{}{}
			walk(e.L)
		case expr.Not:
			walk(e.L)
		case expr.And, expr.Or:
			walk(e.L)
			walk(e.R)
		}
	}
	walk(e)

	for c := range classSet {
		classes = append(classes, c)
	}
	for r := range roleSet {
		roles = append(roles, r)
	}
	sort.Ints(classes)
	sort.Ints(roles)
	return classes, roles
}
