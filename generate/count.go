package generate

import (
	"math"

	"github.com/coregx/regexpand/internal/conv"
	"github.com/coregx/regexpand/pattern"
)

// Count returns the number of strings a Generator over atoms will produce,
// duplicates included. When the number does not fit in a uint64 it returns
// math.MaxUint64 and exact == false.
func Count(atoms []pattern.Atom) (n uint64, exact bool) {
	n, exact = 1, true
	for i := range atoms {
		c, ok := atomCount(&atoms[i])
		exact = exact && ok
		var mulOK bool
		n, mulOK = conv.MulSat(n, c)
		exact = exact && mulOK
	}
	return n, exact
}

func atomCount(a *pattern.Atom) (uint64, bool) {
	var base uint64
	exact := true
	if a.IsLeaf() {
		base = conv.IntToUint64(a.Set.Len())
	} else {
		base, exact = atomCount(a.Sub)
	}
	sum, ok := powerSum(base, a.Min, a.Max)
	return sum, exact && ok
}

// powerSum returns base^lo + base^(lo+1) + ... + base^hi.
func powerSum(base uint64, lo, hi int) (uint64, bool) {
	switch base {
	case 0:
		if lo == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return conv.IntToUint64(hi - lo + 1), true
	}

	// Once base^k overflows for some k <= hi, the base^hi term alone does.
	var sum uint64
	pow := uint64(1)
	for k := 0; k <= hi; k++ {
		if k >= lo {
			var ok bool
			if sum, ok = conv.AddSat(sum, pow); !ok {
				return sum, false
			}
		}
		if k < hi {
			var ok bool
			if pow, ok = conv.MulSat(pow, base); !ok {
				return math.MaxUint64, false
			}
		}
	}
	return sum, true
}
