package ast

import "github.com/ostnam/loxfront/pkg/token"

// VarDecl is `var IDENT ( = EXPR )? ;`. Init is nil when the variable is
// declared without an initializer.
type VarDecl struct {
	Name token.Token
	Init Expr
}

func (n *VarDecl) Accept(v Visitor) { v.VisitVarDecl(n) }

// FuncDecl is `fun IDENT ( params? ) { body }`. Params is capped at 255
// entries by the parser.
type FuncDecl struct {
	Name   token.Token
	Params []token.Token
	Body   *Block
}

func (n *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(n) }
