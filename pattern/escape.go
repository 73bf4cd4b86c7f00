package pattern

// escapeChar introduces escape sequences and shorthand classes.
const escapeChar = '\\'

// controlEscapes maps escape letters to the control characters they denote.
var controlEscapes = map[rune]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'f': '\f',
	'v': '\v',
	'b': '\b',
	'a': '\a',
}

// ResolveEscape resolves the escape sequence starting at src[i].
//
// ok is false when src[i] is not a backslash. Otherwise set holds the
// characters the sequence denotes and n the number of runes consumed:
//
//	\ at end of input   literal backslash (n=1)
//	\w \d \s            word, digit, whitespace classes
//	\W \D \S            their complements within the printable set
//	\\                  literal backslash
//	\n \t \r \f \v \b \a  control characters
//	\x (anything else)  x literally
func ResolveEscape(src []rune, i int) (set CharSet, n int, ok bool) {
	if i < 0 || i >= len(src) || src[i] != escapeChar {
		return CharSet{}, 0, false
	}
	if i+1 >= len(src) {
		return NewCharSet(escapeChar), 1, true
	}

	next := src[i+1]
	if class, ok := shorthandClass(next); ok {
		return class, 2, true
	}
	return NewCharSet(escapeLiteral(next)), 2, true
}

// escapeLiteral returns the character denoted by `\next` when next is not a
// shorthand class letter.
func escapeLiteral(next rune) rune {
	if r, ok := controlEscapes[next]; ok {
		return r
	}
	return next
}

// singleAt reports the single character denoted by the literal or escape at
// src[i], with the number of runes it spans. ok is false for shorthand classes.
func singleAt(src []rune, i int) (r rune, n int, ok bool) {
	if src[i] != escapeChar {
		return src[i], 1, true
	}
	if i+1 >= len(src) {
		return escapeChar, 1, true
	}
	if isShorthand(src[i+1]) {
		return 0, 2, false
	}
	return escapeLiteral(src[i+1]), 2, true
}
