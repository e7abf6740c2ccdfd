// Package expr defines the ALC class-expression tree: the closed sum over
// atomic literals, top, bottom, conjunction, disjunction, negation, and the
// two role restrictions. Values are immutable once built.
package expr

// Kind tags the variant a Expr node carries. There is no runtime type
// inspection beyond this tag.
type Kind int

const (
	Atom   Kind = iota // atomic-class literal; Lit carries the signed class id
	Top                // owl:Thing
	Bottom             // owl:Nothing
	And                // L ⊓ R
	Or                 // L ⊔ R
	Not                // ¬L
	Any                // ∃Role.L
	All                // ∀Role.L
)

// Expr is one node of a class expression. Positive Lit denotes an atomic
// class; negative Lit denotes the negation of the atomic class |Lit|.
// Role is only meaningful for Any/All.
type Expr struct {
	Kind Kind
	Lit  int
	Role int
	L    *Expr
	R    *Expr
}

func NewAtom(lit int) *Expr { return &Expr{Kind: Atom, Lit: lit} }
func NewTop() *Expr         { return &Expr{Kind: Top} }
func NewBottom() *Expr      { return &Expr{Kind: Bottom} }

func NewAnd(l, r *Expr) *Expr { return &Expr{Kind: And, L: l, R: r} }
func NewOr(l, r *Expr) *Expr  { return &Expr{Kind: Or, L: l, R: r} }
func NewNot(l *Expr) *Expr    { return &Expr{Kind: Not, L: l} }

func NewAny(role int, c *Expr) *Expr { return &Expr{Kind: Any, Role: role, L: c} }
func NewAll(role int, c *Expr) *Expr { return &Expr{Kind: All, Role: role, L: c} }

// IsAtomic reports whether e is a literal class reference (positive or
// negated).
func (e *Expr) IsAtomic() bool { return e.Kind == Atom }
