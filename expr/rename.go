package expr

// Rename applies a partial mapping σ from atom literals (signed) to atom
// literals, leaving unmapped atoms and role identities untouched. Unlike
// skeleton.Node.ApplyMapping (which maps by absolute value and preserves
// sign), Rename looks up the exact signed literal, matching its use for
// α-renaming tests where σ need not be sign-preserving.
func Rename(e *Expr, sigma map[int]int) *Expr {
	switch e.Kind {
	case Atom:
		if v, ok := sigma[e.Lit]; ok {
			return NewAtom(v)
		}
		return e
	case Top, Bottom:
		return e
	case And:
		return NewAnd(Rename(e.L, sigma), Rename(e.R, sigma))
	case Or:
		return NewOr(Rename(e.L, sigma), Rename(e.R, sigma))
	case Not:
		return NewNot(Rename(e.L, sigma))
	case Any:
		return NewAny(e.Role, Rename(e.L, sigma))
	case All:
		return NewAll(e.Role, Rename(e.L, sigma))
	default:
		panic("expr: Rename: unknown kind")
	}
}
