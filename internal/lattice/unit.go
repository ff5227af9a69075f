package lattice

import (
	"fmt"
	"strings"

	"rnalattice/internal/core"
)

// alphabet is the base character set in index order: a=0, c=1, g=2, u=3.
const alphabet = "acgu"

// IsRNA reports whether c (case-insensitive) is one of a, c, g, u.
func IsRNA(c byte) bool {
	return strings.IndexByte(alphabet, lower(c)) >= 0
}

// CharToBase converts a base character to its integer encoding. It returns
// an error if c is not a recognized base.
func CharToBase(c byte) (int, error) {
	idx := strings.IndexByte(alphabet, lower(c))
	if idx < 0 {
		return 0, fmt.Errorf("not a base: %q", c)
	}
	return idx, nil
}

// BaseToChar converts an integer base encoding to its character.
func BaseToChar(b int) byte {
	return alphabet[b]
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// Unit is a single monomer occupying one slot of one lattice cell.
type Unit struct {
	Base int     // 0..3, see alphabet
	Pos  core.Vec
	Rev  bool // which slot of the cell this unit occupies

	Index int // this unit's own position in the arena; invariant once set
	Prev  int // arena index of the chain predecessor, or -1
	Next  int // arena index of the chain successor, or -1
}

// BaseChar returns the character for this unit's base.
func (u *Unit) BaseChar() byte {
	return BaseToChar(u.Base)
}

// IsComplementOrWobble reports whether u and v could form a base pair:
// Watson-Crick complementary (base codes summing to 3: A-U or C-G) or
// G-U wobble (product 6).
func (u *Unit) IsComplementOrWobble(v *Unit) bool {
	x, y := u.Base, v.Base
	return x+y == 3 || x*y == 6
}
