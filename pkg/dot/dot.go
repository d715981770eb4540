// Package dot renders an AST as Graphviz DOT source. It is a plain
// consumer of pkg/ast: it never mutates a tree and tolerates any valid,
// possibly-truncated AST the parser hands it.
//
// The renderer is the double-dispatch visitor's canonical example: it
// carries exactly two pieces of state across the walk, a monotonically
// increasing node-id counter and a stack of "current parent id", pushed
// on entry to a node that owns children and popped on exit via defer so
// the stack unwinds correctly even if a future change makes visiting
// fallible. Edges are emitted unlabeled — the wire contract makes edge
// labels optional, and a bare parent-stack walk has no way to know a
// child's structural role (Left vs Right, Condition vs Body) without
// threading extra state through the fixed Visitor signature.
package dot

import (
	"fmt"
	"strings"

	"github.com/ostnam/loxfront/pkg/ast"
	"github.com/ostnam/loxfront/pkg/token"
)

// Print renders decls as a complete `digraph AST { ... }` document with
// the default top-to-bottom layout.
func Print(decls []ast.Decl) string {
	return PrintWithRankdir(decls, "TB")
}

// PrintWithRankdir is Print with the graph's rankdir attribute
// overridden, letting a caller such as the CLI honor a configured
// layout direction ("TB", "LR", ...) without the emitter itself
// depending on the configuration package.
func PrintWithRankdir(decls []ast.Decl, rankdir string) string {
	if rankdir == "" {
		rankdir = "TB"
	}
	p := &printer{out: &strings.Builder{}}
	p.out.WriteString("digraph AST {\n")
	fmt.Fprintf(p.out, "    rankdir=%s;\n", rankdir)

	rootID := p.emitNode("PROGRAM ROOT")
	p.pushParent(rootID)
	ast.Walk(p, decls)
	p.popParent()

	p.out.WriteString("}\n")
	return p.out.String()
}

type printer struct {
	out     *strings.Builder
	counter int
	parents []string
}

func (p *printer) newID() string {
	id := fmt.Sprintf("N%d", p.counter)
	p.counter++
	return id
}

func (p *printer) currentParent() string {
	if len(p.parents) == 0 {
		return ""
	}
	return p.parents[len(p.parents)-1]
}

func (p *printer) pushParent(id string) {
	p.parents = append(p.parents, id)
}

func (p *printer) popParent() {
	if len(p.parents) > 0 {
		p.parents = p.parents[:len(p.parents)-1]
	}
}

// emitNode writes the node statement and, unless this is the very first
// node in the document, an edge from the current parent to it. It
// returns the new node's id so a caller that needs to push it as a
// parent for its own children can do so.
func (p *printer) emitNode(label string) string {
	id := p.newID()
	fmt.Fprintf(p.out, "    %s [label=\"%s\"];\n", id, escape(label))
	if parent := p.currentParent(); parent != "" {
		fmt.Fprintf(p.out, "    %s -> %s;\n", parent, id)
	}
	return id
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// --- declarations ---

func (p *printer) VisitVarDecl(n *ast.VarDecl) {
	id := p.emitNode("VAR: " + n.Name.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	if n.Init != nil {
		n.Init.Accept(p)
	}
}

func (p *printer) VisitFuncDecl(n *ast.FuncDecl) {
	var label strings.Builder
	label.WriteString("FUN: ")
	label.WriteString(n.Name.Lexeme)
	label.WriteString(" (Params: ")
	for i, param := range n.Params {
		if i > 0 {
			label.WriteString(",")
		}
		label.WriteString(param.Lexeme)
	}
	label.WriteString(")")

	id := p.emitNode(label.String())
	p.pushParent(id)
	defer p.popParent()
	if n.Body != nil {
		n.Body.Accept(p)
	}
}

// --- statements ---

func (p *printer) VisitExprStmt(n *ast.ExprStmt) {
	id := p.emitNode("Expr Stmt")
	p.pushParent(id)
	defer p.popParent()
	if n.Expr != nil {
		n.Expr.Accept(p)
	}
}

func (p *printer) VisitPrintStmt(n *ast.PrintStmt) {
	id := p.emitNode("PRINT")
	p.pushParent(id)
	defer p.popParent()
	if n.Expr != nil {
		n.Expr.Accept(p)
	}
}

func (p *printer) VisitReturnStmt(n *ast.ReturnStmt) {
	id := p.emitNode("RETURN")
	p.pushParent(id)
	defer p.popParent()
	if n.Value != nil {
		n.Value.Accept(p)
	}
}

func (p *printer) VisitBreakStmt(n *ast.BreakStmt) {
	p.emitNode("BREAK")
}

func (p *printer) VisitContinueStmt(n *ast.ContinueStmt) {
	p.emitNode("CONTINUE")
}

func (p *printer) VisitBlock(n *ast.Block) {
	id := p.emitNode("BLOCK {}")
	p.pushParent(id)
	defer p.popParent()
	for _, item := range n.Items {
		if item != nil {
			item.Accept(p)
		}
	}
}

func (p *printer) VisitIf(n *ast.If) {
	id := p.emitNode("IF")
	p.pushParent(id)
	defer p.popParent()
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	if n.Then != nil {
		n.Then.Accept(p)
	}
	if n.Else != nil {
		n.Else.Accept(p)
	}
}

func (p *printer) VisitWhile(n *ast.While) {
	id := p.emitNode("WHILE")
	p.pushParent(id)
	defer p.popParent()
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	if n.Body != nil {
		n.Body.Accept(p)
	}
}

func (p *printer) VisitDoWhile(n *ast.DoWhile) {
	id := p.emitNode("DO WHILE")
	p.pushParent(id)
	defer p.popParent()
	if n.Body != nil {
		n.Body.Accept(p)
	}
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
}

func (p *printer) VisitFor(n *ast.For) {
	id := p.emitNode("FOR")
	p.pushParent(id)
	defer p.popParent()
	if n.Init != nil {
		n.Init.Accept(p)
	}
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	if n.Step != nil {
		n.Step.Accept(p)
	}
	if n.Body != nil {
		n.Body.Accept(p)
	}
}

func (p *printer) VisitSwitch(n *ast.Switch) {
	id := p.emitNode("SWITCH")
	p.pushParent(id)
	defer p.popParent()
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	for _, c := range n.Cases {
		if c != nil {
			p.visitCase(c)
		}
	}
}

// visitCase is the dedicated helper for Case, which is not part of the
// Visitor interface: it has no independent identity outside a Switch.
func (p *printer) visitCase(c *ast.Case) {
	label := "CASE"
	if c.Value == nil {
		label = "DEFAULT"
	}
	id := p.emitNode(label)
	p.pushParent(id)
	defer p.popParent()
	if c.Value != nil {
		c.Value.Accept(p)
	}
	for _, d := range c.Body {
		if d != nil {
			d.Accept(p)
		}
	}
}

// --- expressions ---

func (p *printer) VisitPrimary(n *ast.Primary) {
	p.emitNode("LIT: " + primaryLabel(n))
}

func primaryLabel(n *ast.Primary) string {
	if n.Token.Kind == token.String {
		return "\"" + n.Token.Lexeme + "\""
	}
	return n.Token.Lexeme
}

func (p *printer) VisitGrouping(n *ast.Grouping) {
	id := p.emitNode("GROUPING ()")
	p.pushParent(id)
	defer p.popParent()
	if n.Inner != nil {
		n.Inner.Accept(p)
	}
}

func (p *printer) VisitUnary(n *ast.Unary) {
	id := p.emitNode("Unary: " + n.Op.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	if n.Right != nil {
		n.Right.Accept(p)
	}
}

func (p *printer) VisitBinary(n *ast.Binary) {
	id := p.emitNode("Binary: " + n.Op.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	if n.Left != nil {
		n.Left.Accept(p)
	}
	if n.Right != nil {
		n.Right.Accept(p)
	}
}

func (p *printer) VisitLogical(n *ast.Logical) {
	id := p.emitNode("Logical: " + n.Op.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	if n.Left != nil {
		n.Left.Accept(p)
	}
	if n.Right != nil {
		n.Right.Accept(p)
	}
}

func (p *printer) VisitAssignment(n *ast.Assignment) {
	id := p.emitNode("Assign: " + n.Op.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	if n.Target != nil {
		n.Target.Accept(p)
	}
	if n.Value != nil {
		n.Value.Accept(p)
	}
}

func (p *printer) VisitConditional(n *ast.Conditional) {
	id := p.emitNode("Ternary ?:")
	p.pushParent(id)
	defer p.popParent()
	if n.Cond != nil {
		n.Cond.Accept(p)
	}
	if n.Then != nil {
		n.Then.Accept(p)
	}
	if n.Else != nil {
		n.Else.Accept(p)
	}
}

func (p *printer) VisitPostfix(n *ast.Postfix) {
	id := p.emitNode("POSTFIX")
	p.pushParent(id)
	defer p.popParent()
	if n.Base != nil {
		n.Base.Accept(p)
	}
	for _, t := range n.Tails {
		p.visitTail(t)
	}
}

func (p *printer) visitTail(t ast.Tail) {
	id := p.emitNode("Tail: " + t.Op.Lexeme)
	p.pushParent(id)
	defer p.popParent()
	switch t.Kind {
	case ast.TailCall:
		for _, arg := range t.Args {
			if arg != nil {
				arg.Accept(p)
			}
		}
	case ast.TailIndex:
		if t.Index != nil {
			t.Index.Accept(p)
		}
	case ast.TailMember:
		if t.Member != nil {
			t.Member.Accept(p)
		}
	case ast.TailIncDec:
		// no payload beyond the operator token already in the label
	}
}
