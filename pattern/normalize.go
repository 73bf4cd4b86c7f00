package pattern

import (
	"strconv"
)

// Normalize rewrites the unbounded repetition operators into explicit ranges:
//
//	+  ->  {1,ceiling}
//	*  ->  {0,ceiling}
//	?  ->  {0,1}
//
// Escape pairs are copied through unchanged, so `\+` stays a literal plus while
// `\\+` repeats a literal backslash. Operators inside bracket expressions are
// ordinary characters and are not rewritten. Everything else is preserved.
func Normalize(src string, ceiling int) string {
	out, _ := normalize([]rune(src), ceiling)
	return string(out)
}

// normalize is Normalize over runes. origin[j] is the index in src of the
// rune that produced out[j], so errors can point into the caller's pattern.
func normalize(src []rune, ceiling int) (out []rune, origin []int) {
	upper := []rune(strconv.Itoa(ceiling))
	out = make([]rune, 0, len(src)+8)
	origin = make([]int, 0, len(src)+8)

	emit := func(at int, rs ...rune) {
		for _, r := range rs {
			out = append(out, r)
			origin = append(origin, at)
		}
	}
	emitRange := func(at int, lo []rune, hi []rune) {
		emit(at, '{')
		emit(at, lo...)
		emit(at, ',')
		emit(at, hi...)
		emit(at, '}')
	}

	inClass := false
	for i := 0; i < len(src); i++ {
		r := src[i]
		if r == escapeChar {
			emit(i, r)
			if i+1 < len(src) {
				i++
				emit(i, src[i])
			}
			continue
		}

		if inClass {
			if r == ']' {
				inClass = false
			}
			emit(i, r)
			continue
		}

		switch r {
		case '[':
			inClass = true
			emit(i, r)
		case '+':
			emitRange(i, []rune{'1'}, upper)
		case '*':
			emitRange(i, []rune{'0'}, upper)
		case '?':
			emitRange(i, []rune{'0'}, []rune{'1'})
		default:
			emit(i, r)
		}
	}
	return out, origin
}
