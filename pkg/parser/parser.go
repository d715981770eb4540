// Package parser implements the recursive-descent, precedence-climbing
// parser: a single token cursor with peek/advance/check/match/consume
// helpers, no lookahead beyond the next token for any rule, and
// panic-mode error recovery that resynchronizes at the next probable
// declaration boundary.
//
// A parse error is signaled by panicking with the unexported parseError
// type and recovered exactly once, in declaration, which is the loop's
// single catch point. This mirrors the exception-based unwind of the
// source implementation without needing to roll back any state: partial
// subtrees built on the failing call chain are local variables that Go
// discards on the panicking goroutine's stack unwind.
package parser

import (
	"github.com/ostnam/loxfront/pkg/ast"
	"github.com/ostnam/loxfront/pkg/diag"
	"github.com/ostnam/loxfront/pkg/token"
	"github.com/ostnam/loxfront/pkg/utils"
)

func tokenKind(t token.Token) token.Kind { return t.Kind }

// Parser is the single owner of the token cursor and the diagnostic bag.
type Parser struct {
	toks []token.Token
	pos  int
	bag  *diag.Bag
}

// parseError is the internal unwind signal. It carries no data: the
// diagnostic itself was already recorded in the bag by error() before
// panicking.
type parseError struct{}

// Parse consumes a complete token sequence (ending in EOF) and returns
// the top-level declarations parsed from it, in source order, along with
// a diagnostic bag whose HadError() reports whether any parse error
// occurred. Declarations that failed to parse are omitted; the returned
// list may be shorter than a successful parse would have produced.
func Parse(toks []token.Token) ([]ast.Decl, *diag.Bag) {
	p := &Parser{toks: toks, bag: diag.NewBag()}
	var decls []ast.Decl
	for !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			decls = append(decls, d)
		}
	}
	return decls, p.bag
}

// --- cursor helpers ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	if t := utils.Peek(p.toks, p.pos); t != nil {
		return *t
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) previous() token.Token {
	if t := utils.Previous(p.toks, p.pos); t != nil {
		return *t
	}
	return p.toks[0]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		utils.Advance(p.toks, &p.pos)
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	return utils.PeekMatches(p.toks, p.pos, tokenKind, kind)
}

func (p *Parser) match(kinds ...token.Kind) bool {
	if utils.PeekMatches(p.toks, p.pos, tokenKind, kinds...) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error records a diagnostic in the `[Line <n>] Error at
// <'lexeme'|'end'>: <message>` shape and returns the unwind signal;
// callers that must abort the current production panic with the
// result, callers that must merely flag an error (assignment target
// validation) discard it.
func (p *Parser) error(tok token.Token, message string) parseError {
	d := diag.Diagnostic{Kind: diag.Parse, Line: tok.Line, Message: message}
	if tok.Kind == token.EOF {
		d.AtEOF = true
	} else {
		d.Lexeme = tok.Lexeme
	}
	p.bag.Add(d)
	return parseError{}
}

// synchronize discards tokens until the previous token was a semicolon or
// the next token plausibly begins a new declaration/statement, then
// returns control to the top-level declaration loop.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Var, token.Fun, token.For, token.If, token.While, token.Switch, token.Return:
			return
		}
		p.advance()
	}
}

// --- declarations ---

func (p *Parser) declaration() (decl ast.Decl) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				decl = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Var):
		return p.varDeclaration()
	case p.match(token.Fun):
		return p.funDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Decl {
	name := p.consume(token.Identifier, "Expect variable name.")
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarDecl{Name: name, Init: init}
}

const maxParams = 255

func (p *Parser) funDeclaration() ast.Decl {
	name := p.consume(token.Identifier, "Expect function name.")
	p.consume(token.LeftParen, "Expect '(' after function name.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxParams {
				panic(p.error(p.peek(), "Cannot have more than 255 parameters."))
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before function body.")
	body := p.block()
	return &ast.FuncDecl{Name: name, Params: params, Body: body}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.LeftBrace):
		return p.block()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.Do):
		return p.doWhileStatement()
	case p.match(token.Switch):
		return p.switchStatement()
	case p.match(token.Break):
		return p.breakStatement()
	case p.match(token.Continue):
		return p.continueStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Semicolon):
		return &ast.ExprStmt{Expr: nil}
	default:
		return p.exprStatement()
	}
}

func (p *Parser) block() *ast.Block {
	var items []ast.Decl
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if d := p.declaration(); d != nil {
			items = append(items, d)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return &ast.Block{Items: items}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

func (p *Parser) doWhileStatement() ast.Stmt {
	body := p.statement()
	p.consume(token.While, "Expect 'while' after 'do' body.")
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	p.consume(token.Semicolon, "Expect ';' after 'do while' statement.")
	return &ast.DoWhile{Body: body, Cond: cond}
}

func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var init ast.Decl
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDeclaration()
	default:
		init = p.exprStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var step ast.Expr
	if !p.check(token.RightParen) {
		step = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()
	return &ast.For{Init: init, Cond: cond, Step: step, Body: body}
}

func (p *Parser) switchStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'switch'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after switch condition.")
	p.consume(token.LeftBrace, "Expect '{' before switch body.")

	var cases []*ast.Case
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		var value ast.Expr
		if p.match(token.Case) {
			value = p.expression()
			p.consume(token.Colon, "Expect ':' after case value.")
		} else {
			p.consume(token.Default, "Expect 'case' or 'default'.")
			p.consume(token.Colon, "Expect ':' after 'default'.")
		}
		var body []ast.Decl
		for !p.check(token.Case) && !p.check(token.Default) && !p.check(token.RightBrace) && !p.isAtEnd() {
			if d := p.declaration(); d != nil {
				body = append(body, d)
			}
		}
		cases = append(cases, &ast.Case{Value: value, Body: body})
	}
	p.consume(token.RightBrace, "Expect '}' after switch body.")
	return &ast.Switch{Cond: cond, Cases: cases}
}

func (p *Parser) breakStatement() ast.Stmt {
	p.consume(token.Semicolon, "Expect ';' after 'break'.")
	return &ast.BreakStmt{}
}

func (p *Parser) continueStatement() ast.Stmt {
	p.consume(token.Semicolon, "Expect ';' after 'continue'.")
	return &ast.ContinueStmt{}
}

func (p *Parser) returnStatement() ast.Stmt {
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Value: value}
}

func (p *Parser) printStatement() ast.Stmt {
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expr: value}
}

func (p *Parser) exprStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

var assignOps = []token.Kind{
	token.Equal, token.PlusEqual, token.MinusEqual, token.StarEqual, token.SlashEqual,
	token.PercentEqual, token.ShiftLeftEqual, token.ShiftRightEqual,
	token.AmpEqual, token.CaretEqual, token.PipeEqual,
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`. An
// invalid target (anything but an identifier Primary or a Postfix) is
// flagged but does not abort the parse — the Assignment node is still
// built.
func (p *Parser) assignment() ast.Expr {
	expr := p.conditional()
	if p.match(assignOps...) {
		op := p.previous()
		value := p.assignment()
		if !isAssignable(expr) {
			p.error(op, "Invalid assignment target.")
		}
		return &ast.Assignment{Target: expr, Op: op, Value: value}
	}
	return expr
}

func isAssignable(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Primary:
		return t.Token.Kind == token.Identifier
	case *ast.Postfix:
		return true
	default:
		return false
	}
}

// conditional is the ternary `Cond ? Then : Else`, right-associative. The
// true branch parses as a full expression (so an assignment can nest
// there without parentheses); the false branch recurses into conditional
// so chained ternaries associate to the right.
func (p *Parser) conditional() ast.Expr {
	expr := p.logicalOr()
	if p.match(token.Question) {
		then := p.expression()
		p.consume(token.Colon, "Expect ':' after true expression in conditional operator.")
		els := p.conditional()
		return &ast.Conditional{Cond: expr, Then: then, Else: els}
	}
	return expr
}

func (p *Parser) logicalOr() ast.Expr {
	expr := p.logicalAnd()
	for p.match(token.PipePipe) {
		op := p.previous()
		right := p.logicalAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicalAnd() ast.Expr {
	expr := p.bitwiseOr()
	for p.match(token.AmpAmp) {
		op := p.previous()
		right := p.bitwiseOr()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseOr() ast.Expr {
	expr := p.bitwiseXor()
	for p.match(token.Pipe) {
		op := p.previous()
		right := p.bitwiseXor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseXor() ast.Expr {
	expr := p.bitwiseAnd()
	for p.match(token.Caret) {
		op := p.previous()
		right := p.bitwiseAnd()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) bitwiseAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.Amp) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.shift()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.shift()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) shift() ast.Expr {
	expr := p.term()
	for p.match(token.ShiftLeft, token.ShiftRight) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash, token.Percent) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

var unaryOps = []token.Kind{
	token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus, token.Plus, token.Minus,
}

// unary is right-associative by direct recursion: `--!x` wraps twice.
func (p *Parser) unary() ast.Expr {
	if p.match(unaryOps...) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.postfix()
}

// postfix collects zero or more call/index/member/incdec tails onto a
// primary base. A base with no tails is returned unwrapped: Postfix only
// appears in the tree when there is at least one tail to hold.
func (p *Parser) postfix() ast.Expr {
	expr := p.primary()
	var pf *ast.Postfix

	for p.check(token.LeftParen) || p.check(token.LeftBracket) ||
		p.check(token.Dot) || p.check(token.PlusPlus) || p.check(token.MinusMinus) {
		if pf == nil {
			pf = &ast.Postfix{Base: expr}
			expr = pf
		}
		op := p.advance()
		switch op.Kind {
		case token.LeftParen:
			var args []ast.Expr
			if !p.check(token.RightParen) {
				for {
					args = append(args, p.assignment())
					if !p.match(token.Comma) {
						break
					}
				}
			}
			p.consume(token.RightParen, "Expect ')' after arguments.")
			pf.Tails = append(pf.Tails, ast.Tail{Kind: ast.TailCall, Op: op, Args: args})
		case token.LeftBracket:
			idx := p.expression()
			p.consume(token.RightBracket, "Expect ']' after index.")
			pf.Tails = append(pf.Tails, ast.Tail{Kind: ast.TailIndex, Op: op, Index: idx})
		case token.Dot:
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			pf.Tails = append(pf.Tails, ast.Tail{Kind: ast.TailMember, Op: op, Member: &ast.Primary{Token: name}})
		case token.PlusPlus, token.MinusMinus:
			pf.Tails = append(pf.Tails, ast.Tail{Kind: ast.TailIncDec, Op: op})
		}
	}
	return expr
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False, token.True, token.Nil, token.Number, token.String, token.Identifier):
		return &ast.Primary{Token: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		panic(p.error(p.peek(), "Expect expression."))
	}
}
