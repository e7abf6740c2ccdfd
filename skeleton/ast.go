package skeleton

import (
	"sort"

	"github.com/nodeadmin/alcgen/expr"
)

// ToAST folds the node into an expression tree: conjuncts are joined
// left-associatively by ⊓; existentials/universals are joined in with
// their roles; if disjuncts are present, their ⊔-join is further ⊓-ed in.
// An empty node yields ⊤. Conjunct and role iteration is sorted so the
// same skeleton always folds to the same AST shape.
func (n *Node) ToAST() *expr.Expr {
	var result *expr.Expr
	addConjunct := func(item *expr.Expr) {
		if result == nil {
			result = item
		} else {
			result = expr.NewAnd(result, item)
		}
	}

	for _, c := range sortedInts(n.Conjuncts) {
		addConjunct(expr.NewAtom(c))
	}
	for _, r := range sortedRoles(n.Existential) {
		for _, child := range n.Existential[r] {
			addConjunct(expr.NewAny(r, child.ToAST()))
		}
	}
	for _, r := range sortedRoles(n.Universal) {
		for _, child := range n.Universal[r] {
			addConjunct(expr.NewAll(r, child.ToAST()))
		}
	}

	if len(n.Disjuncts) > 0 {
		if len(n.Disjuncts) < 2 {
			invariantViolation("disjunct list has length 1")
		}
		var or *expr.Expr
		for _, d := range n.Disjuncts {
			item := d.ToAST()
			if or == nil {
				or = item
			} else {
				or = expr.NewOr(or, item)
			}
		}
		addConjunct(or)
	}

	if result == nil {
		return expr.NewTop()
	}
	return result
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func sortedRoles(byRole map[int][]*Node) []int {
	out := make([]int, 0, len(byRole))
	for r := range byRole {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
