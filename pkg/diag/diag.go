// Package diag collects lexical and parse diagnostics behind a single
// sticky error flag, and renders them in the two wire formats fixed by
// the language front end's external interface.
package diag

import (
	"strconv"
	"strings"
)

// Kind distinguishes where a diagnostic originated.
type Kind uint8

const (
	Lexical Kind = iota
	Parse
)

// Diagnostic is one reported error. Structural/programmer-bug errors are
// not represented here: they are Go panics, since they indicate the
// grammar's shape guarantees were violated (see pkg/parser).
type Diagnostic struct {
	Kind     Kind
	Message  string
	Line     int
	ColStart int
	// AtEOF and Lexeme are only meaningful for Kind == Parse: the
	// "Error at '<lexeme>'" vs "Error at end" distinction.
	AtEOF  bool
	Lexeme string
}

// Error renders the diagnostic in its fixed wire format:
//
//	[Line <n>, Col <c>] Error: <message>            (lexical)
//	[Line <n>] Error at <'lexeme'|'end'>: <message>  (parse)
func (d Diagnostic) Error() string {
	if d.Kind == Lexical {
		return "[Line " + strconv.Itoa(d.Line) + ", Col " + strconv.Itoa(d.ColStart) + "] Error: " + d.Message
	}
	where := "'" + d.Lexeme + "'"
	if d.AtEOF {
		where = "end"
	}
	return "[Line " + strconv.Itoa(d.Line) + "] Error at " + where + ": " + d.Message
}

// Bag accumulates diagnostics in report order and tracks a sticky error
// flag: once set, it never clears, even if later stages succeed. It
// implements error by joining its diagnostics; a non-nil *Bag stored in
// an error-typed slot is non-nil even when empty, so HadError is the
// test for whether anything was reported.
type Bag struct {
	items []Diagnostic
	had   bool
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic and sets the sticky error flag.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
	b.had = true
}

// HadError reports the sticky error flag.
func (b *Bag) HadError() bool {
	return b.had
}

// All returns the diagnostics in report order. The returned slice must
// not be mutated.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Len reports how many diagnostics were collected.
func (b *Bag) Len() int {
	return len(b.items)
}

// Error joins every diagnostic's message with newlines, satisfying the
// error interface. Returns "" when the bag is empty so callers that print
// unconditionally don't emit a blank line.
func (b *Bag) Error() string {
	if len(b.items) == 0 {
		return ""
	}
	msgs := make([]string, len(b.items))
	for i, d := range b.items {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}
