// Package ast defines the abstract syntax tree produced by pkg/parser: a
// tagged-variant node model (three disjoint categories — declarations,
// statements, expressions) plus a double-dispatch Visitor surface.
//
// Every parent owns its children exclusively: there is no sharing and no
// cycles, so releasing a root recursively releases the whole subtree for
// free under Go's garbage collector. Absent children are represented as
// nil interface values, never sentinel nodes.
package ast

// Decl is satisfied by every node that can appear in a declaration slot:
// the two true declarations (VarDecl, FuncDecl) and every statement, since
// blocks accept either.
type Decl interface {
	Accept(Visitor)
}

// Stmt narrows Decl to the statement kinds. It is used for slots the
// grammar constrains to a statement rather than a full declaration (an
// if-branch, a loop body).
type Stmt interface {
	Decl
	isStmt()
}

// Expr is satisfied by every expression node.
type Expr interface {
	Accept(Visitor)
	isExpr()
}
