// Package lexer implements the stateful scanner: a single forward cursor
// over the source buffer that produces a finite token sequence terminated
// by exactly one END_OF_FILE token. It never aborts on a lexical error;
// it records the error in a diag.Bag and keeps scanning.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/ostnam/loxfront/pkg/diag"
	"github.com/ostnam/loxfront/pkg/token"
	"github.com/ostnam/loxfront/pkg/utils"
)

// Lexer holds the single owner of the scanning cursor. Nothing about it
// is visible outside this package; callers only ever see Scan's result.
type Lexer struct {
	src       []byte
	start     int
	cur       int
	line      int
	lineStart int
	bag       *diag.Bag
	toks      []token.Token
}

// Scan lexes the complete source buffer and returns the resulting token
// sequence (always ending in exactly one EOF token) along with a
// diagnostic bag whose HadError() reports whether any lexical error
// occurred.
func Scan(src []byte) ([]token.Token, *diag.Bag) {
	l := &Lexer{
		src:       src,
		line:      1,
		bag:       diag.NewBag(),
		lineStart: 0,
	}
	for !l.isAtEnd() {
		l.skipWhitespaceAndComments()
		if l.isAtEnd() {
			break
		}
		l.start = l.cur
		l.scanToken()
	}
	l.start = l.cur
	l.toks = append(l.toks, token.Token{
		Kind:     token.EOF,
		Lexeme:   "",
		Line:     l.line,
		ColStart: l.cur - l.lineStart,
		ColEnd:   l.cur - l.lineStart,
	})
	return l.toks, l.bag
}

func (l *Lexer) isAtEnd() bool {
	return utils.IsAtEnd(l.src, l.cur)
}

func (l *Lexer) advance() byte {
	c := utils.Advance(l.src, &l.cur)
	return *c
}

func (l *Lexer) peek() byte {
	if c := utils.Peek(l.src, l.cur); c != nil {
		return *c
	}
	return 0
}

func (l *Lexer) peekAt(offset int) byte {
	if c := utils.Peek(l.src, l.cur+offset); c != nil {
		return *c
	}
	return 0
}

func (l *Lexer) match(expected byte) bool {
	return utils.Match(l.src, &l.cur, expected)
}

func (l *Lexer) newLine() {
	l.line++
	l.lineStart = l.cur
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.advance()
			l.newLine()
		case '/':
			if l.peekAt(1) == '/' {
				for l.peek() != '\n' && !l.isAtEnd() {
					l.advance()
				}
			} else if l.peekAt(1) == '*' {
				l.scanBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanBlockComment() {
	openLine := l.line
	openCol := l.cur - l.lineStart
	l.advance() // '/'
	l.advance() // '*'
	for !(l.peek() == '*' && l.peekAt(1) == '/') && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.advance()
			l.newLine()
		} else {
			l.advance()
		}
	}
	if l.isAtEnd() {
		l.errorf(openLine, openCol, "Unterminated block comment.")
		return
	}
	l.advance() // '*'
	l.advance() // '/'
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch {
	case isAlpha(c):
		l.scanIdentifier()
	case isDigit(c):
		l.scanNumber()
	default:
		switch c {
		case '"':
			l.scanString()
		case '(':
			l.emit(token.LeftParen)
		case ')':
			l.emit(token.RightParen)
		case '{':
			l.emit(token.LeftBrace)
		case '}':
			l.emit(token.RightBrace)
		case '[':
			l.emit(token.LeftBracket)
		case ']':
			l.emit(token.RightBracket)
		case ',':
			l.emit(token.Comma)
		case '.':
			l.emit(token.Dot)
		case ';':
			l.emit(token.Semicolon)
		case ':':
			l.emit(token.Colon)
		case '?':
			l.emit(token.Question)
		case '~':
			l.emit(token.Tilde)
		case '+':
			switch {
			case l.match('='):
				l.emit(token.PlusEqual)
			case l.match('+'):
				l.emit(token.PlusPlus)
			default:
				l.emit(token.Plus)
			}
		case '-':
			switch {
			case l.match('='):
				l.emit(token.MinusEqual)
			case l.match('-'):
				l.emit(token.MinusMinus)
			default:
				l.emit(token.Minus)
			}
		case '*':
			if l.match('=') {
				l.emit(token.StarEqual)
			} else {
				l.emit(token.Star)
			}
		case '/':
			if l.match('=') {
				l.emit(token.SlashEqual)
			} else {
				l.emit(token.Slash)
			}
		case '%':
			if l.match('=') {
				l.emit(token.PercentEqual)
			} else {
				l.emit(token.Percent)
			}
		case '!':
			if l.match('=') {
				l.emit(token.BangEqual)
			} else {
				l.emit(token.Bang)
			}
		case '=':
			if l.match('=') {
				l.emit(token.EqualEqual)
			} else {
				l.emit(token.Equal)
			}
		case '<':
			switch {
			case l.match('='):
				l.emit(token.LessEqual)
			case l.match('<'):
				if l.match('=') {
					l.emit(token.ShiftLeftEqual)
				} else {
					l.emit(token.ShiftLeft)
				}
			default:
				l.emit(token.Less)
			}
		case '>':
			switch {
			case l.match('='):
				l.emit(token.GreaterEqual)
			case l.match('>'):
				if l.match('=') {
					l.emit(token.ShiftRightEqual)
				} else {
					l.emit(token.ShiftRight)
				}
			default:
				l.emit(token.Greater)
			}
		case '&':
			switch {
			case l.match('='):
				l.emit(token.AmpEqual)
			case l.match('&'):
				l.emit(token.AmpAmp)
			default:
				l.emit(token.Amp)
			}
		case '|':
			switch {
			case l.match('='):
				l.emit(token.PipeEqual)
			case l.match('|'):
				l.emit(token.PipePipe)
			default:
				l.emit(token.Pipe)
			}
		case '^':
			if l.match('=') {
				l.emit(token.CaretEqual)
			} else {
				l.emit(token.Caret)
			}
		default:
			l.errorf(l.line, l.start-l.lineStart, "Unexpected character: '%c'.", c)
		}
	}
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := string(l.src[l.start:l.cur])
	if kind, ok := token.Keywords[text]; ok {
		if kind == token.True {
			l.emitLiteral(kind, token.BoolLiteral(true))
			return
		}
		if kind == token.False {
			l.emitLiteral(kind, token.BoolLiteral(false))
			return
		}
		l.emit(kind)
		return
	}
	l.emit(token.Identifier)
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	malformed := false
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			malformed = true
		} else {
			for isDigit(l.peek()) {
				l.advance()
			}
		}
	}
	text := string(l.src[l.start:l.cur])
	if malformed {
		l.errorf(l.line, l.start-l.lineStart, "Expected digit after exponent marker.")
		l.emit(token.Number)
		return
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.errorf(l.line, l.start-l.lineStart, "Invalid numeric literal.")
		l.emit(token.Number)
		return
	}
	l.emitLiteral(token.Number, token.NumLiteral(v))
}

func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.advance()
			l.newLine()
		} else {
			l.advance()
		}
	}
	if l.isAtEnd() {
		l.errorf(l.line, l.start-l.lineStart, "Unterminated string literal.")
		return
	}
	l.advance() // closing quote
	value := string(l.src[l.start+1 : l.cur-1])
	l.emitLiteral(token.String, token.StrLiteral(value))
}

func (l *Lexer) emit(kind token.Kind) {
	l.toks = append(l.toks, token.Token{
		Kind:     kind,
		Lexeme:   string(l.src[l.start:l.cur]),
		Line:     l.line,
		ColStart: l.start - l.lineStart,
		ColEnd:   l.cur - l.lineStart,
	})
}

func (l *Lexer) emitLiteral(kind token.Kind, lit token.Literal) {
	l.toks = append(l.toks, token.Token{
		Kind:     kind,
		Lexeme:   string(l.src[l.start:l.cur]),
		Literal:  lit,
		Line:     l.line,
		ColStart: l.start - l.lineStart,
		ColEnd:   l.cur - l.lineStart,
	})
}

func (l *Lexer) errorf(line, col int, format string, args ...any) {
	l.bag.Add(diag.Diagnostic{
		Kind:     diag.Lexical,
		Line:     line,
		ColStart: col,
		Message:  fmt.Sprintf(format, args...),
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
