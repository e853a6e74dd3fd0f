package arith

import (
	"math/bits"
)

// Modulus is a prime m = 2^256 - c with c < 2^129.
type Modulus struct {
	name    string
	m       Limbs
	c       Limbs // 2^256 - m; c[3] is always zero
	mMinus2 Limbs // Fermat inversion exponent
}

func newModulus(name string, m Limbs) *Modulus {
	var zero Limbs
	c, _ := sub256(zero, m)
	if c[3] != 0 {
		panic("arith: modulus too far below 2^256")
	}
	mMinus2, _ := sub256(m, FromUint64(2))
	return &Modulus{name: name, m: m, c: c, mMinus2: mMinus2}
}

var (
	// P is the secp256k1 field prime 2^256 - 2^32 - 977.
	P = newModulus("p", Limbs{
		0xFFFFFFFEFFFFFC2F, 0xFFFFFFFFFFFFFFFF,
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
	})

	// N is the order of the secp256k1 base point.
	N = newModulus("n", Limbs{
		0xBFD25E8CD0364141, 0xBAAEDCE6AF48A03B,
		0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF,
	})
)

// Name returns "p" or "n".
func (md *Modulus) Name() string {
	return md.name
}

// Value returns the modulus itself.
func (md *Modulus) Value() Limbs {
	return md.m
}

// IsReduced returns 1 if a < m.
func (md *Modulus) IsReduced(a Limbs) int {
	_, borrow := sub256(a, md.m)
	return int(borrow)
}

// Reduce maps any 256-bit value into [0, m). Since m > 2^255 one
// conditional subtraction is always enough.
func (md *Modulus) Reduce(a Limbs) Limbs {
	d, borrow := sub256(a, md.m)
	return Select(int(borrow^1), d, a)
}

// Add returns a + b mod m for reduced a, b.
func (md *Modulus) Add(a, b Limbs) Limbs {
	s, carry := add256(a, b)
	d, borrow := sub256(s, md.m)
	// s >= m iff the addition overflowed 2^256 or the subtraction did not borrow.
	return Select(int(carry|(borrow^1)), d, s)
}

// Sub returns a - b mod m for reduced a, b.
func (md *Modulus) Sub(a, b Limbs) Limbs {
	d, borrow := sub256(a, b)
	t, _ := add256(d, md.m)
	return Select(int(borrow), t, d)
}

// Neg returns -a mod m.
func (md *Modulus) Neg(a Limbs) Limbs {
	return md.Sub(Limbs{}, a)
}

// Mul returns a * b mod m via the full 512-bit product.
func (md *Modulus) Mul(a, b Limbs) Limbs {
	return md.reduceWide(mul512(a, b))
}

// Square returns a^2 mod m.
func (md *Modulus) Square(a Limbs) Limbs {
	return md.Mul(a, a)
}

// Pow returns a^e mod m. Every one of the 256 exponent bits costs one
// squaring and one multiplication; the product is kept or discarded with a
// mask, so the operation sequence does not depend on a or e.
func (md *Modulus) Pow(a, e Limbs) Limbs {
	r := FromUint64(1)
	for i := 255; i >= 0; i-- {
		r = md.Square(r)
		t := md.Mul(r, a)
		r = Select(e.Bit(i), t, r)
	}
	return r
}

// Inv returns a^(m-2) mod m, the inverse of a for a != 0 (Fermat). For
// a == 0 the result is 0; callers that must reject zero check first.
func (md *Modulus) Inv(a Limbs) Limbs {
	return md.Pow(a, md.mMinus2)
}

// fold computes lo + hi*c where lo and hi are the low and high halves of w.
// The result is again eight limbs; it never overflows for inputs below 2^512.
func (md *Modulus) fold(w [8]uint64) [8]uint64 {
	var r [8]uint64
	copy(r[:4], w[:4])
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 3; j++ {
			hi, lo := bits.Mul64(w[4+i], md.c[j])
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
		for k := i + 3; k < 8; k++ {
			r[k], carry = bits.Add64(r[k], carry, 0)
		}
	}
	return r
}

// reduceWide reduces a 512-bit value. With c < 2^129 the bound shrinks
// 2^512 -> 2^386 -> 2^260 -> 2^256+2^133 -> 2^256 over four folds, after
// which a single conditional subtraction finishes the job.
func (md *Modulus) reduceWide(w [8]uint64) Limbs {
	for i := 0; i < 4; i++ {
		w = md.fold(w)
	}
	return md.Reduce(Limbs{w[0], w[1], w[2], w[3]})
}
