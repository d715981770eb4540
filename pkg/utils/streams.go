// Package utils provides small generic helpers for walking a slice with
// an externally-owned cursor position. Both the lexer's byte cursor and
// the parser's token cursor are built on these.
package utils

// Peek returns a pointer to the element at pos, or nil if pos is out of
// range. The pointer aliases the slice; callers must copy before the
// slice can be mutated or reallocated out from under them.
func Peek[T any](s []T, pos int) *T {
	if pos < 0 || pos >= len(s) {
		return nil
	}
	return &s[pos]
}

// Previous returns a pointer to the element immediately before pos, or
// nil if that index is out of range.
func Previous[T any](s []T, pos int) *T {
	prevIdx := pos - 1
	return Advance(s, &prevIdx)
}

// Advance returns the element at *pos and moves *pos forward by one,
// unless the cursor is already out of range, in which case it returns
// nil and leaves *pos untouched.
func Advance[T any](s []T, pos *int) *T {
	if *pos < 0 || *pos >= len(s) {
		return nil
	}
	res := &s[*pos]
	*pos++
	return res
}

// IsAtEnd reports whether pos has reached or passed the end of s.
func IsAtEnd[T any](s []T, pos int) bool {
	return pos >= len(s)
}

// Match advances *pos and returns true if the element at *pos equals one
// of vals; otherwise it leaves *pos untouched and returns false.
func Match[T comparable](s []T, pos *int, vals ...T) bool {
	if *pos >= len(s) {
		return false
	}
	for _, v := range vals {
		if s[*pos] == v {
			*pos++
			return true
		}
	}
	return false
}

// PeekMatches reports whether the element at pos, projected through key,
// equals one of vals. It does not move the cursor.
func PeekMatches[T any, K comparable](s []T, pos int, key func(T) K, vals ...K) bool {
	e := Peek(s, pos)
	if e == nil {
		return false
	}
	for _, v := range vals {
		if key(*e) == v {
			return true
		}
	}
	return false
}
