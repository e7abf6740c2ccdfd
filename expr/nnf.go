package expr

// NNF pushes negations down to the atomic leaves using De Morgan's laws and
// quantifier duality (¬∀R.C ↔ ∃R.¬C). Applied bottom-up; returns a fresh
// tree and is idempotent.
func NNF(e *Expr) *Expr {
	switch e.Kind {
	case Atom, Top, Bottom:
		return e
	case And:
		return NewAnd(NNF(e.L), NNF(e.R))
	case Or:
		return NewOr(NNF(e.L), NNF(e.R))
	case Any:
		return NewAny(e.Role, NNF(e.L))
	case All:
		return NewAll(e.Role, NNF(e.L))
	case Not:
		return nnfNot(e.L)
	default:
		panic("expr: NNF: unknown kind")
	}
}

// nnfNot computes NNF(¬inner).
func nnfNot(inner *Expr) *Expr {
	switch inner.Kind {
	case Atom:
		return NewAtom(-inner.Lit)
	case Top:
		return NewBottom()
	case Bottom:
		return NewTop()
	case Not:
		// double negation
		return NNF(inner.L)
	case And:
		return NewOr(nnfNot(inner.L), nnfNot(inner.R))
	case Or:
		return NewAnd(nnfNot(inner.L), nnfNot(inner.R))
	case All:
		return NewAny(inner.Role, nnfNot(inner.L))
	case Any:
		return NewAll(inner.Role, nnfNot(inner.L))
	default:
		panic("expr: nnfNot: unknown kind")
	}
}
