package regexpand

import (
	"strings"

	"github.com/coregx/regexpand/pattern"
	"github.com/coregx/regexpand/wordlist"
)

// Config configures pattern compilation and expansion.
type Config struct {
	// PlaceholderToken marks word-list substitution sites in a pattern.
	// An occurrence preceded by a backslash is literal text.
	//
	// Default: "/x"
	PlaceholderToken string

	// QuantifierCeiling is the repeat bound substituted for the unbounded
	// operators + and *, so `a+` means a{1,QuantifierCeiling}.
	//
	// Default: 1,000,000
	//
	// Expansions grow exponentially with this value for any class wider than
	// one character; lower it when unbounded operators are expected to be
	// exhausted rather than sampled.
	QuantifierCeiling int

	// CapitalizeWordList replaces every word-list line with its casing
	// variants before substitution. Only meaningful with CompileWords.
	//
	// Default: false
	CapitalizeWordList bool

	// LiteralWords inserts word-list entries verbatim by escaping the
	// characters that are special in patterns (see QuoteMeta). When false, a
	// word such as "a[bc]" contributes a character class.
	//
	// Default: false
	LiteralWords bool

	// StrictSyntax additionally requires the raw pattern to be a valid regular
	// expression for a standard engine (github.com/coregx/coregex, which
	// follows RE2 syntax). This rejects inputs the expansion dialect reads as
	// literal text, such as an unbalanced '(', and repeat counts above 1000.
	//
	// Default: false
	StrictSyntax bool
}

// DefaultConfig returns a configuration with the default placeholder token
// and quantifier ceiling. Optional word-list processing and strict syntax
// checking are off.
func DefaultConfig() Config {
	return Config{
		PlaceholderToken:   wordlist.DefaultToken,
		QuantifierCeiling:  pattern.DefaultCeiling,
		CapitalizeWordList: false,
		LiteralWords:       false,
		StrictSyntax:       false,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.QuantifierCeiling < 1 {
		return &Error{
			Kind:    InvalidConfig,
			Pos:     -1,
			Message: "QuantifierCeiling must be >= 1",
		}
	}

	if c.PlaceholderToken == "" {
		return &Error{
			Kind:    InvalidConfig,
			Pos:     -1,
			Message: "PlaceholderToken must not be empty",
		}
	}

	if strings.HasPrefix(c.PlaceholderToken, `\`) {
		return &Error{
			Kind:    InvalidConfig,
			Pos:     -1,
			Message: "PlaceholderToken must not start with a backslash",
		}
	}

	return nil
}

// WithPlaceholderToken returns a new config with the specified token
func (c Config) WithPlaceholderToken(token string) Config {
	c.PlaceholderToken = token
	return c
}

// WithQuantifierCeiling returns a new config with the specified ceiling
func (c Config) WithQuantifierCeiling(ceiling int) Config {
	c.QuantifierCeiling = ceiling
	return c
}

// WithCapitalizeWordList returns a new config with capitalization enabled/disabled
func (c Config) WithCapitalizeWordList(enabled bool) Config {
	c.CapitalizeWordList = enabled
	return c
}

// WithLiteralWords returns a new config with verbatim word insertion enabled/disabled
func (c Config) WithLiteralWords(enabled bool) Config {
	c.LiteralWords = enabled
	return c
}

// WithStrictSyntax returns a new config with strict syntax checking enabled/disabled
func (c Config) WithStrictSyntax(enabled bool) Config {
	c.StrictSyntax = enabled
	return c
}
