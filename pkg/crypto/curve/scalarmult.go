package curve

import (
	"sync"

	"github.com/Caqil/secp256k1/internal/security"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

const (
	windowBits = 4
	windowSize = 1 << windowBits
	windows    = scalar.Bits / windowBits
)

// opCounter records the group operations performed by a multiplication.
// A nil counter records nothing.
type opCounter struct {
	doubles int
	adds    int
	lookups int
}

func (c *opCounter) double() {
	if c != nil {
		c.doubles++
	}
}

func (c *opCounter) add() {
	if c != nil {
		c.adds++
	}
}

func (c *opCounter) lookup() {
	if c != nil {
		c.lookups++
	}
}

// lookup returns table[idx] after touching every entry, so neither the
// branch pattern nor the memory access pattern depends on idx.
func lookup(table *[windowSize]Point, idx int) *Point {
	r := Identity()
	for j := 0; j < windowSize; j++ {
		r.cmov(security.Eq64(uint64(j), uint64(idx)), &table[j])
	}
	return r
}

// ScalarMult returns k*p.
//
// k is a reduced scalar by construction, so the result is well defined for
// any encoding it was decoded from. The loop walks all 64 four-bit windows
// of k from the top: four doublings, one constant-time table lookup and one
// complete addition per window. A zero window adds the identity instead of
// being skipped, so the sequence of operations is the same for every k.
func ScalarMult(k scalar.Scalar, p *Point) *Point {
	return scalarMult(k, p, nil)
}

func scalarMult(k scalar.Scalar, p *Point, ops *opCounter) *Point {
	var table [windowSize]Point
	table[0] = *Identity()
	table[1] = *p
	for i := 2; i < windowSize; i++ {
		if i%2 == 0 {
			table[i] = *table[i/2].Double()
		} else {
			table[i] = *table[i-1].Add(p)
		}
	}

	r := Identity()
	for i := windows - 1; i >= 0; i-- {
		for j := 0; j < windowBits; j++ {
			r = r.Double()
			ops.double()
		}
		t := lookup(&table, k.Nibble(i))
		ops.lookup()
		r = r.Add(t)
		ops.add()
	}
	return r
}

var (
	baseTableOnce sync.Once
	baseTable     *[windows][windowSize]Point
)

// getBaseTable builds T[i][j] = j * 16^i * G on first use.
func getBaseTable() *[windows][windowSize]Point {
	baseTableOnce.Do(func() {
		t := new([windows][windowSize]Point)
		base := Generator()
		for i := 0; i < windows; i++ {
			t[i][0] = *Identity()
			t[i][1] = *base
			for j := 2; j < windowSize; j++ {
				t[i][j] = *t[i][j-1].Add(base)
			}
			base = t[i][windowSize-1].Add(base)
		}
		baseTable = t
	})
	return baseTable
}

// ScalarBaseMult returns k*G using a precomputed table of generator
// multiples. Each of the 64 windows costs one constant-time lookup and one
// complete addition regardless of its digit.
func ScalarBaseMult(k scalar.Scalar) *Point {
	return scalarBaseMult(k, nil)
}

func scalarBaseMult(k scalar.Scalar, ops *opCounter) *Point {
	table := getBaseTable()
	r := Identity()
	for i := 0; i < windows; i++ {
		t := lookup(&table[i], k.Nibble(i))
		ops.lookup()
		r = r.Add(t)
		ops.add()
	}
	return r
}

// MultiScalarMult returns u1*G + u2*q, the combination ECDSA verification
// needs.
func MultiScalarMult(u1, u2 scalar.Scalar, q *Point) *Point {
	return ScalarBaseMult(u1).Add(ScalarMult(u2, q))
}
