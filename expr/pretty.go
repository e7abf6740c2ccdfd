package expr

import "strconv"

var precedence = map[Kind]int{
	Not: 50, Any: 40, All: 40, And: 30, Or: 30,
}

// ToPretty renders e using the standard DL infix notation, adding
// parentheses only where precedence requires it. Useful for test failure
// messages and debug logs; not part of the Manchester external interface.
func ToPretty(e *Expr) string {
	return pretty(e, 0)
}

func pretty(e *Expr, minPrec int) string {
	var s string
	prec := precedence[e.Kind]
	switch e.Kind {
	case Atom:
		if e.Lit < 0 {
			return "¬C" + strconv.Itoa(-e.Lit)
		}
		return "C" + strconv.Itoa(e.Lit)
	case Top:
		return "⊤"
	case Bottom:
		return "⊥"
	case Not:
		s = "¬" + pretty(e.L, prec)
	case And:
		s = pretty(e.L, prec) + " ⊓ " + pretty(e.R, prec)
	case Or:
		s = pretty(e.L, prec) + " ⊔ " + pretty(e.R, prec)
	case Any:
		s = "∃R" + strconv.Itoa(e.Role) + "." + pretty(e.L, prec)
	case All:
		s = "∀R" + strconv.Itoa(e.Role) + "." + pretty(e.L, prec)
	default:
		panic("expr: ToPretty: unknown kind")
	}
	if minPrec >= prec {
		return "(" + s + ")"
	}
	return s
}
