package regexpand_test

import (
	"errors"
	"fmt"

	"github.com/coregx/regexpand"
)

// ExampleCompile demonstrates expanding a pattern into its strings.
func ExampleCompile() {
	ex, err := regexpand.Compile(`ab[0-2]`)
	if err != nil {
		panic(err)
	}

	for s := range ex.Strings() {
		fmt.Println(s)
	}
	// Output:
	// ab0
	// ab1
	// ab2
}

// ExampleCompileWithConfig demonstrates capping unbounded quantifiers.
func ExampleCompileWithConfig() {
	config := regexpand.DefaultConfig().WithQuantifierCeiling(3)
	ex := must(regexpand.CompileWithConfig(`x+`, config))

	for s := range ex.Strings() {
		fmt.Print(s, " ")
	}
	fmt.Println()
	// Output: x xx xxx
}

// ExampleCompileWords demonstrates word-list substitution.
func ExampleCompileWords() {
	ex := must(regexpand.CompileWords(`/x[12]`, []string{"admin", "root"}, regexpand.DefaultConfig()))

	for s := range ex.Strings() {
		fmt.Println(s)
	}
	// Output:
	// admin1
	// admin2
	// root1
	// root2
}

// ExampleConfig_WithCapitalizeWordList demonstrates casing variants.
func ExampleConfig_WithCapitalizeWordList() {
	config := regexpand.DefaultConfig().WithCapitalizeWordList(true)
	ex := must(regexpand.CompileWords(`/x!`, []string{"hello world"}, config))

	for s := range ex.Strings() {
		fmt.Println(s)
	}
	// Output:
	// HELLO WORLD!
	// Hello World!
	// Hello world!
	// hello world!
}

// ExampleExpander_Count demonstrates sizing an expansion before running it.
func ExampleExpander_Count() {
	ex := regexpand.MustCompile(`\d{4}`)
	n, exact := ex.Count()
	fmt.Println(n, exact)
	// Output: 10000 true
}

// ExampleExpander_Iterator demonstrates the raw expansion, repeats included.
func ExampleExpander_Iterator() {
	it := regexpand.MustCompile(`a?a?`).Iterator()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%q ", s)
	}
	fmt.Println()
	// Output: "" "a" "a" "aa"
}

// ExampleQuoteMeta demonstrates inserting text verbatim.
func ExampleQuoteMeta() {
	q := regexpand.QuoteMeta("1+1=[2]")
	fmt.Println(q)
	for s := range regexpand.MustCompile(q).Strings() {
		fmt.Println(s)
	}
	// Output:
	// 1\+1=\[2\]
	// 1+1=[2]
}

// Example_errors demonstrates inspecting a compile error.
func Example_errors() {
	_, err := regexpand.Compile(`[z-a]`)
	fmt.Println(errors.Is(err, regexpand.ErrInvalidRange))

	var perr *regexpand.Error
	if errors.As(err, &perr) {
		fmt.Println(perr.Kind, perr.Pos)
	}
	fmt.Println(err)
	// Output:
	// true
	// InvalidRange 0
	// InvalidRange: invalid character class range "z-a" at position 0
}

func must(ex *regexpand.Expander, err error) *regexpand.Expander {
	if err != nil {
		panic(err)
	}
	return ex
}
