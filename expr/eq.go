package expr

// Eq reports equality under NNF, modulo commutativity of ⊓/⊔ only:
// operands to And/Or may be compared in either order; Any/All compare the
// role identity exactly and recurse on the concept; atoms compare by signed
// literal; anything else is unequal.
func Eq(a, b *Expr) bool {
	return realEq(NNF(a), NNF(b))
}

func realEq(a, b *Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Atom:
		return a.Lit == b.Lit
	case Top, Bottom:
		return true
	case And, Or:
		return (realEq(a.L, b.L) && realEq(a.R, b.R)) ||
			(realEq(a.L, b.R) && realEq(a.R, b.L))
	case Not:
		return realEq(a.L, b.L)
	case Any, All:
		return a.Role == b.Role && realEq(a.L, b.L)
	default:
		return false
	}
}
