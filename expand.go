// Package regexpand expands a compact pattern into every string it denotes.
//
// Patterns use a small regular-expression dialect: literals, bracket classes
// with ranges, the shorthand classes \w \d \s \W \D \S, escapes, and the
// quantifiers {m,n} + * ?. There is no alternation, grouping or anchoring.
// Unbounded quantifiers are capped by a configurable ceiling.
//
// Results are produced lazily, in a deterministic order: the rightmost atom
// varies fastest and quantified atoms list shorter repetitions first. Nothing
// is materialized, so a consumer may stop pulling at any time.
//
// Basic usage:
//
//	ex, err := regexpand.Compile(`ab[0-2]`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for s := range ex.Strings() {
//	    fmt.Println(s) // ab0, ab1, ab2
//	}
//
// Word-list substitution:
//
//	ex, err := regexpand.CompileWords(`/x[0-9]{2}`, []string{"admin", "root"}, regexpand.DefaultConfig())
//	// admin00 ... admin99, root00 ... root99
//
// Every error is reported by the Compile functions, before any output is
// produced.
package regexpand

import (
	"errors"
	"fmt"
	"iter"

	"github.com/coregx/coregex"

	"github.com/coregx/regexpand/dedup"
	"github.com/coregx/regexpand/generate"
	"github.com/coregx/regexpand/internal/conv"
	"github.com/coregx/regexpand/pattern"
	"github.com/coregx/regexpand/wordlist"
)

// Expander is a compiled pattern, optionally bound to a word list.
//
// An Expander is immutable and safe to use concurrently from multiple
// goroutines; every Iterator and every Strings sequence owns its own state.
type Expander struct {
	source string
	config Config

	// plain patterns
	atoms []pattern.Atom

	// word-list patterns
	tmpl  *wordlist.Template
	words []string
	frags *fragments // nil when concrete patterns must be parsed whole

	count uint64
	exact bool
}

// Compile parses a pattern with the default configuration.
//
// Example:
//
//	ex, err := regexpand.Compile(`[a-c]{2}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(src string) (*Expander, error) {
	return CompileWithConfig(src, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var pins = regexpand.MustCompile(`\d{4}`)
func MustCompile(src string) *Expander {
	ex, err := Compile(src)
	if err != nil {
		panic("regexpand: Compile(`" + src + "`): " + err.Error())
	}
	return ex
}

// CompileWithConfig parses a pattern with a custom configuration.
// Placeholder tokens have no special meaning here; use CompileWords for
// substitution.
//
// Example:
//
//	config := regexpand.DefaultConfig().WithQuantifierCeiling(3)
//	ex, err := regexpand.CompileWithConfig(`[ab]+`, config)
func CompileWithConfig(src string, config Config) (*Expander, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.CapitalizeWordList {
		return nil, &Error{
			Kind:    InvalidConfig,
			Pos:     -1,
			Message: "CapitalizeWordList requires a word list",
		}
	}

	p, err := pattern.Parse(src, config.QuantifierCeiling)
	if err != nil {
		return nil, err
	}
	if err := checkSyntax(src, config); err != nil {
		return nil, err
	}
	count, exact := generate.Count(p.Atoms)
	return &Expander{
		source: src,
		config: config,
		atoms:  p.Atoms,
		count:  count,
		exact:  exact,
	}, nil
}

// CompileWords parses a pattern containing placeholder tokens and binds it to
// a word list. The expansion is, for every ordered choice of words at the
// placeholder sites, the expansion of the pattern with those words inserted.
// Words are inserted as pattern text unless config.LiteralWords is set.
//
// Every error is reported here, before any output is produced. When each
// segment and each word parses on its own, they are parsed once and combined
// per word choice, so compiling costs time proportional to the word list
// rather than to the number of combinations. Otherwise, for instance when a
// word completes a bracket expression opened by the pattern, every concrete
// pattern is parsed up front.
//
// Example:
//
//	ex, err := regexpand.CompileWords(`/x@example\.com`, []string{"alice", "bob"}, regexpand.DefaultConfig())
func CompileWords(src string, words []string, config Config) (*Expander, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := wordlist.Split(src, config.PlaceholderToken)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, &Error{Kind: EmptyWordList, Pos: -1, Message: "word list is empty"}
	}
	if config.CapitalizeWordList {
		words = wordlist.Capitalize(words)
	} else {
		words = append([]string(nil), words...)
	}
	if config.LiteralWords {
		for i, w := range words {
			words[i] = QuoteMeta(w)
		}
	}

	ex := &Expander{
		source: src,
		config: config,
		tmpl:   tmpl,
		words:  words,
		exact:  true,
	}
	if frags, ok := parseFragments(tmpl, words, config.QuantifierCeiling); ok {
		ex.frags = frags
		ex.count, ex.exact = frags.count()
	} else if err := ex.validateTuples(); err != nil {
		return nil, err
	}
	if err := checkSyntax(src, config); err != nil {
		return nil, err
	}
	return ex, nil
}

// validateTuples parses every concrete pattern and totals the candidate
// count. It is the fallback for word lists whose pieces cannot be parsed
// separately.
func (e *Expander) validateTuples() error {
	tuples, err := e.tmpl.Expand(e.words)
	if err != nil {
		return err
	}
	for concrete := range tuples.All() {
		p, err := pattern.Parse(concrete, e.config.QuantifierCeiling)
		if err != nil {
			var perr *Error
			if !errors.As(err, &perr) {
				return err
			}
			return &Error{
				Kind:    perr.Kind,
				Pos:     perr.Pos,
				Message: fmt.Sprintf("%s in substituted pattern %q", perr.Message, concrete),
			}
		}

		n, exact := generate.Count(p.Atoms)
		var ok bool
		e.count, ok = conv.AddSat(e.count, n)
		e.exact = e.exact && exact && ok
	}
	return nil
}

// checkSyntax runs the optional strict validation against coregex. It runs
// after the dialect's own checks, whose errors carry positions.
func checkSyntax(src string, config Config) error {
	if !config.StrictSyntax {
		return nil
	}
	if _, err := coregex.Compile(src); err != nil {
		return &Error{
			Kind:    InvalidSyntax,
			Pos:     -1,
			Message: "pattern is not a valid regular expression",
			Cause:   err,
		}
	}
	return nil
}

// String returns the source text used to compile the Expander.
func (e *Expander) String() string {
	return e.source
}

// Config returns the configuration the Expander was compiled with.
func (e *Expander) Config() Config {
	return e.config
}

// Words returns the effective word list (after capitalization and quoting),
// or nil for a plain pattern.
func (e *Expander) Words() []string {
	if e.words == nil {
		return nil
	}
	return append([]string(nil), e.words...)
}

// Sites returns the number of placeholder sites, 0 for a plain pattern.
func (e *Expander) Sites() int {
	if e.tmpl == nil {
		return 0
	}
	return e.tmpl.Sites()
}

// Count returns the number of strings Iterator will produce, duplicates
// included. exact is false when the number exceeds math.MaxUint64, in which
// case n is math.MaxUint64.
func (e *Expander) Count() (n uint64, exact bool) {
	return e.count, e.exact
}

// Iterator returns a fresh cursor over the raw expansion. The raw expansion
// may repeat strings, for example `[ab]?[ab]?` yields "a" twice; use Strings
// or dedup.NewFilter to drop repeats.
func (e *Expander) Iterator() *Iterator {
	it := &Iterator{ceiling: e.config.QuantifierCeiling, frags: e.frags}
	if e.tmpl == nil {
		it.gen = generate.New(e.atoms)
		return it
	}
	// Expand cannot fail: the word list was checked at compile time.
	it.tuples, it.err = e.tmpl.Expand(e.words)
	return it
}

// Strings returns the distinct strings of the expansion in first-seen order.
// Each iteration starts over with an empty seen-set.
//
// Example:
//
//	for s := range regexpand.MustCompile(`[ab]?[ab]?`).Strings() {
//	    fmt.Println(s) // "", a, b, aa, ab, ba, bb
//	}
func (e *Expander) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		f := e.Distinct()
		for {
			s, ok := f.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Distinct returns a fresh deduplicating cursor over the expansion.
func (e *Expander) Distinct() *dedup.Filter {
	return dedup.NewFilter(e.Iterator().Next)
}

// Iterator is a cursor over an expansion. It is not safe for concurrent use.
type Iterator struct {
	gen     *generate.Generator
	tuples  *wordlist.Tuples
	frags   *fragments
	ceiling int
	err     error
}

// Next returns the next string, or false when the expansion is exhausted.
func (it *Iterator) Next() (string, bool) {
	for it.err == nil {
		if it.gen != nil {
			if s, ok := it.gen.Next(); ok {
				return s, true
			}
		}
		if it.tuples == nil || !it.tuples.Step() {
			return "", false
		}
		if it.frags != nil {
			it.gen = generate.New(it.frags.join(it.tuples.Choice()))
			continue
		}

		p, err := pattern.Parse(it.tuples.Current(), it.ceiling)
		if err != nil {
			it.err = err
			break
		}
		it.gen = generate.New(p.Atoms)
	}
	return "", false
}

// Err returns the error that stopped the iteration, if any. Expanders built
// by the Compile functions have already validated every pattern, so this is
// nil in practice.
func (it *Iterator) Err() error {
	return it.err
}

// QuoteMeta escapes every character that is special in the pattern dialect,
// so that the result expands to exactly s. LiteralWords applies it to each
// word-list line.
//
// Example:
//
//	regexpand.QuoteMeta("a+b[1]") // `a\+b\[1\]`
func QuoteMeta(s string) string {
	return pattern.QuoteMeta(s)
}
