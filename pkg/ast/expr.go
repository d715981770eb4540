package ast

import "github.com/ostnam/loxfront/pkg/token"

// Primary wraps a single literal or identifier token: a number, string,
// boolean, nil, or identifier.
type Primary struct {
	Token token.Token
}

func (n *Primary) Accept(v Visitor) { v.VisitPrimary(n) }
func (*Primary) isExpr()            {}

// Grouping is a parenthesized expression, `( Inner )`.
type Grouping struct {
	Inner Expr
}

func (n *Grouping) Accept(v Visitor) { v.VisitGrouping(n) }
func (*Grouping) isExpr()            {}

// Unary is a prefix operator: `! ~ ++ -- + -`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }
func (*Unary) isExpr()            {}

// Binary is any non-short-circuiting binary operator: arithmetic,
// bitwise, comparison, equality, or shift. Op is never && or ||.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }
func (*Binary) isExpr()            {}

// Logical is a short-circuiting && or || expression.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *Logical) Accept(v Visitor) { v.VisitLogical(n) }
func (*Logical) isExpr()            {}

// Assignment is `Target op Value` for op in
// `= += -= *= /= %= <<= >>= &= ^= |=`. Target is structurally restricted
// to an identifier Primary or a Postfix, but the parser still constructs
// this node even when that restriction is violated — see pkg/parser.
type Assignment struct {
	Target Expr
	Op     token.Token
	Value  Expr
}

func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
func (*Assignment) isExpr()            {}

// Conditional is the ternary `Cond ? Then : Else`. Its parse rule makes
// it right-associative: `a ? b : c ? d : e` groups as
// `Conditional(a, b, Conditional(c, d, e))`.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (n *Conditional) Accept(v Visitor) { v.VisitConditional(n) }
func (*Conditional) isExpr()            {}

// TailKind identifies which postfix operation a Tail performs.
type TailKind uint8

const (
	// TailCall is `( args? )`.
	TailCall TailKind = iota
	// TailIndex is `[ expr ]`.
	TailIndex
	// TailMember is `. identifier`.
	TailMember
	// TailIncDec is a payload-less `++` or `--`.
	TailIncDec
)

// Tail is one link of a postfix chain. Exactly one of Args, Index, or
// Member is meaningful, selected by Kind; TailIncDec carries no payload
// at all (Op alone, either PLUS_PLUS or MINUS_MINUS, says which).
type Tail struct {
	Kind   TailKind
	Op     token.Token
	Args   []Expr   // TailCall
	Index  Expr     // TailIndex
	Member *Primary // TailMember
}

// Postfix is a base expression followed by one or more Tails, in source
// order: `a(b)[c].d++` is one Postfix over base `a` with four tails.
type Postfix struct {
	Base  Expr
	Tails []Tail
}

func (n *Postfix) Accept(v Visitor) { v.VisitPostfix(n) }
func (*Postfix) isExpr()            {}
