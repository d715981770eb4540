package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ostnam/loxfront/pkg/ast"
	"github.com/ostnam/loxfront/pkg/token"
)

// orderRecorder is a minimal Visitor that only cares which node kind was
// visited and in what order; every method records its node and none
// recurses into children.
type orderRecorder struct {
	order []string
}

func (r *orderRecorder) VisitVarDecl(n *ast.VarDecl)         { r.order = append(r.order, "var:"+n.Name.Lexeme) }
func (r *orderRecorder) VisitFuncDecl(n *ast.FuncDecl)       { r.order = append(r.order, "fun:"+n.Name.Lexeme) }
func (r *orderRecorder) VisitExprStmt(n *ast.ExprStmt)       { r.order = append(r.order, "exprstmt") }
func (r *orderRecorder) VisitPrintStmt(n *ast.PrintStmt)     { r.order = append(r.order, "print") }
func (r *orderRecorder) VisitReturnStmt(n *ast.ReturnStmt)   { r.order = append(r.order, "return") }
func (r *orderRecorder) VisitBreakStmt(n *ast.BreakStmt)     { r.order = append(r.order, "break") }
func (r *orderRecorder) VisitContinueStmt(*ast.ContinueStmt) { r.order = append(r.order, "continue") }
func (r *orderRecorder) VisitBlock(*ast.Block)               { r.order = append(r.order, "block") }
func (r *orderRecorder) VisitIf(*ast.If)                     { r.order = append(r.order, "if") }
func (r *orderRecorder) VisitWhile(*ast.While)               { r.order = append(r.order, "while") }
func (r *orderRecorder) VisitDoWhile(*ast.DoWhile)           { r.order = append(r.order, "dowhile") }
func (r *orderRecorder) VisitFor(*ast.For)                   { r.order = append(r.order, "for") }
func (r *orderRecorder) VisitSwitch(*ast.Switch)             { r.order = append(r.order, "switch") }
func (r *orderRecorder) VisitPrimary(*ast.Primary)           { r.order = append(r.order, "primary") }
func (r *orderRecorder) VisitGrouping(*ast.Grouping)         { r.order = append(r.order, "grouping") }
func (r *orderRecorder) VisitUnary(*ast.Unary)               { r.order = append(r.order, "unary") }
func (r *orderRecorder) VisitBinary(*ast.Binary)             { r.order = append(r.order, "binary") }
func (r *orderRecorder) VisitLogical(*ast.Logical)           { r.order = append(r.order, "logical") }
func (r *orderRecorder) VisitAssignment(*ast.Assignment)     { r.order = append(r.order, "assign") }
func (r *orderRecorder) VisitConditional(*ast.Conditional)   { r.order = append(r.order, "conditional") }
func (r *orderRecorder) VisitPostfix(*ast.Postfix)           { r.order = append(r.order, "postfix") }

func TestWalkVisitsTopLevelDeclsInSourceOrder(t *testing.T) {
	decls := []ast.Decl{
		&ast.VarDecl{Name: token.Token{Lexeme: "a"}},
		&ast.FuncDecl{Name: token.Token{Lexeme: "f"}, Body: &ast.Block{}},
		&ast.VarDecl{Name: token.Token{Lexeme: "b"}},
	}

	r := &orderRecorder{}
	ast.Walk(r, decls)

	assert.Equal(t, []string{"var:a", "fun:f", "var:b"}, r.order)
}

func TestWalkSkipsNilDecls(t *testing.T) {
	decls := []ast.Decl{
		&ast.VarDecl{Name: token.Token{Lexeme: "a"}},
		nil,
		&ast.VarDecl{Name: token.Token{Lexeme: "b"}},
	}

	r := &orderRecorder{}
	assert.NotPanics(t, func() { ast.Walk(r, decls) })
	assert.Equal(t, []string{"var:a", "var:b"}, r.order)
}

func TestWalkOverEmptySliceIsNoop(t *testing.T) {
	r := &orderRecorder{}
	ast.Walk(r, nil)
	assert.Empty(t, r.order)
}
