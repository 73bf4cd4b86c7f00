// Package pattern parses the expansion pattern language into atoms.
//
// The language is a restricted regular-expression dialect:
//
//	abc          literal characters
//	[a-z_0-9]    bracket expressions with inclusive ranges and escapes
//	\w \d \s     word, digit and whitespace shorthand classes
//	\W \D \S     complements of the above within the printable ASCII set
//	\n \t ...    control-character escapes; any other escaped character is literal
//	{m} {m,n}    bounded repetition of the preceding atom
//	+ * ?        unbounded repetition, rewritten to {1,C}, {0,C} and {0,1}
//
// There is no alternation, grouping, anchoring or negated class. Parsing is a
// single left-to-right pass over the normalized pattern; the only revision of
// already-emitted atoms is attaching a quantifier to the atom before it.
package pattern

import (
	"strconv"
	"strings"
)

// DefaultCeiling bounds the repetition count of `+` and `*`.
const DefaultCeiling = 1_000_000

type parser struct {
	src    []rune // normalized pattern
	origin []int  // src index -> index in the caller's pattern
	pos    int
	atoms  []Atom

	ceiling int
	rawLen  int
}

// Parse parses src into a Pattern. Unbounded operators repeat at most ceiling
// times.
//
// Errors are *Error values carrying the rune offset of the offending
// construct in src.
func Parse(src string, ceiling int) (*Pattern, error) {
	if ceiling < 1 {
		return nil, errorAt(InvalidConfig, -1, "repeat ceiling must be >= 1, got %d", ceiling)
	}

	raw := []rune(src)
	norm, origin := normalize(raw, ceiling)
	p := &parser{
		src:     norm,
		origin:  origin,
		ceiling: ceiling,
		rawLen:  len(raw),
	}

	for p.pos < len(p.src) {
		if err := p.parseAtom(); err != nil {
			return nil, err
		}
	}

	return &Pattern{
		Atoms:   p.atoms,
		source:  src,
		ceiling: ceiling,
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string, ceiling int) *Pattern {
	p, err := Parse(src, ceiling)
	if err != nil {
		panic("pattern: Parse(`" + src + "`): " + err.Error())
	}
	return p
}

// at maps a normalized index back into the caller's pattern.
func (p *parser) at(i int) int {
	if i < len(p.origin) {
		return p.origin[i]
	}
	return p.rawLen
}

func (p *parser) push(set CharSet) {
	p.atoms = append(p.atoms, Atom{Set: set, Min: 1, Max: 1})
}

func (p *parser) parseAtom() error {
	if set, n, ok := ResolveEscape(p.src, p.pos); ok {
		p.push(set)
		p.pos += n
		return nil
	}

	switch p.src[p.pos] {
	case '[':
		return p.parseClass()
	case '{':
		return p.parseRepeat()
	}

	p.push(NewCharSet(p.src[p.pos]))
	p.pos++
	return nil
}

// parseClass parses a bracket expression starting at p.pos.
func (p *parser) parseClass() error {
	start := p.pos
	end := p.classEnd(start + 1)
	if end < 0 {
		return errorAt(MalformedClass, p.at(start), "missing closing ]")
	}

	var set CharSet
	for j := start + 1; j < end; {
		lo, n, single := singleAt(p.src, j)
		if !single {
			class, _, _ := ResolveEscape(p.src, j)
			set.Union(class)
			j += n
			continue
		}

		// lo-hi, where both ends are single characters
		if dash := j + n; dash+1 < end && p.src[dash] == '-' {
			if hi, m, ok := singleAt(p.src, dash+1); ok {
				if lo > hi {
					return errorAt(InvalidRange, p.at(j),
						"invalid character class range %s", strconv.Quote(string([]rune{lo, '-', hi})))
				}
				set.AddRange(lo, hi)
				j = dash + 1 + m
				continue
			}
		}

		set.Add(lo)
		j += n
	}

	if set.Len() == 0 {
		return errorAt(EmptyClass, p.at(start), "empty character class")
	}
	set.Sort()
	p.push(set)
	p.pos = end + 1
	return nil
}

// classEnd returns the index of the first unescaped ']' at or after from, or -1.
func (p *parser) classEnd(from int) int {
	for j := from; j < len(p.src); j++ {
		switch p.src[j] {
		case escapeChar:
			j++
		case ']':
			return j
		}
	}
	return -1
}

// parseRepeat parses {m}, {m,n} or {m,} at p.pos and attaches it to the
// previous atom.
func (p *parser) parseRepeat() error {
	start := p.pos
	end := -1
	for j := start + 1; j < len(p.src); j++ {
		if p.src[j] == '}' {
			end = j
			break
		}
	}
	if end < 0 {
		return errorAt(MalformedQuantifier, p.at(start), "missing closing }")
	}
	if len(p.atoms) == 0 {
		return errorAt(DanglingQuantifier, p.at(start), "missing argument to repetition operator")
	}

	body := string(p.src[start+1 : end])
	lo, hi, ok := p.parseBounds(body)
	if !ok {
		return errorAt(MalformedQuantifier, p.at(start), "invalid repeat count {%s}", body)
	}
	if lo > hi {
		return errorAt(InvalidRange, p.at(start), "invalid repeat count {%s}: min > max", body)
	}

	last := len(p.atoms) - 1
	prev := p.atoms[last]
	if prev.IsSingle() {
		prev.Min, prev.Max = lo, hi
	} else {
		inner := prev
		prev = Atom{Sub: &inner, Min: lo, Max: hi}
	}
	p.atoms[last] = prev
	p.pos = end + 1
	return nil
}

// parseBounds parses "m", "m,n" or "m,". An omitted max means the ceiling.
func (p *parser) parseBounds(body string) (lo, hi int, ok bool) {
	minStr, maxStr, hasComma := strings.Cut(body, ",")
	lo, ok = parseCount(minStr)
	if !ok {
		return 0, 0, false
	}
	if !hasComma {
		return lo, lo, true
	}
	if strings.TrimSpace(maxStr) == "" {
		return lo, max(lo, p.ceiling), true
	}
	hi, ok = parseCount(maxStr)
	return lo, hi, ok
}

func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
