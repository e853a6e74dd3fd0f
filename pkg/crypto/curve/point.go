package curve

import (
	"fmt"

	"github.com/Caqil/secp256k1/pkg/crypto/field"
)

// Point is an element of the secp256k1 group. The zero value is not a valid
// point; use Identity, Generator, NewPoint or LiftX. Points are immutable:
// every operation returns a fresh *Point.
type Point struct {
	x, y, z field.Element
}

// NewPoint builds a point from affine coordinates, failing with
// ErrPointNotOnCurve when they do not satisfy the curve equation.
func NewPoint(x, y field.Element) (*Point, error) {
	if !IsOnCurveAffine(x, y) {
		return nil, ErrPointNotOnCurve
	}
	return &Point{x: x, y: y, z: field.One()}, nil
}

// NewPointXY builds a point from two 32-byte big-endian affine coordinates.
// Coordinates >= p are rejected rather than reduced.
func NewPointXY(xb, yb []byte) (*Point, error) {
	x, err := field.FromCanonicalBytes(xb)
	if err != nil {
		return nil, fmt.Errorf("%w: x: %v", ErrInvalidEncoding, err)
	}
	y, err := field.FromCanonicalBytes(yb)
	if err != nil {
		return nil, fmt.Errorf("%w: y: %v", ErrInvalidEncoding, err)
	}
	return NewPoint(x, y)
}

// LiftX returns the point with affine x-coordinate x whose y-coordinate has
// the requested parity. It fails with ErrPointNotOnCurve when x^3 + 7 is not
// a square.
func LiftX(x field.Element, odd bool) (*Point, error) {
	y, ok := x.Square().Mul(x).Add(curveB).Sqrt()
	if !ok {
		return nil, ErrPointNotOnCurve
	}
	if y.IsOdd() != odd {
		y = y.Negate()
	}
	return &Point{x: x, y: y, z: field.One()}, nil
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.z.IsZero()
}

// IsOnCurve checks the projective equation Y^2 Z = X^3 + 7 Z^3, which holds
// for the identity and for every valid finite point.
func (p *Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return p.x.IsZero() && !p.y.IsZero()
	}
	lhs := p.y.Square().Mul(p.z)
	z3 := p.z.Square().Mul(p.z)
	rhs := p.x.Square().Mul(p.x).Add(z3.MulInt(B))
	return lhs.Equal(rhs)
}

// Add returns p + q. The formula is complete: the identity, doubling
// (p == q) and inverse (p == -q) cases fall out of the same computation.
func (p *Point) Add(q *Point) *Point {
	t0 := p.x.Mul(q.x)
	t1 := p.y.Mul(q.y)
	t2 := p.z.Mul(q.z)
	t3 := p.x.Add(p.y).Mul(q.x.Add(q.y)).Sub(t0.Add(t1))
	t4 := p.y.Add(p.z).Mul(q.y.Add(q.z)).Sub(t1.Add(t2))
	y3 := p.x.Add(p.z).Mul(q.x.Add(q.z)).Sub(t0.Add(t2))

	x3 := t0.Double()
	t0 = x3.Add(t0)
	t2 = t2.MulInt(b3)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = y3.MulInt(b3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return &Point{x: x3, y: y3, z: z3}
}

// Double returns 2p. The identity doubles to itself.
func (p *Point) Double() *Point {
	t0 := p.y.Square()
	z3 := t0.Double().Double().Double()
	t1 := p.y.Mul(p.z)
	t2 := p.z.Square().MulInt(b3)
	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)
	t1 = t2.Double()
	t2 = t1.Add(t2)
	t0 = t0.Sub(t2)
	y3 = t0.Mul(y3)
	y3 = x3.Add(y3)
	t1 = p.x.Mul(p.y)
	x3 = t0.Mul(t1)
	x3 = x3.Double()

	return &Point{x: x3, y: y3, z: z3}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Negate())
}

// Negate returns -p, mapping (x, y) to (x, -y). The identity maps to itself.
func (p *Point) Negate() *Point {
	return &Point{x: p.x, y: p.y.Negate(), z: p.z}
}

// Equal compares the affine points represented by p and q by cross
// multiplication, so different projective triples of the same point compare
// equal and no inversion is needed.
func (p *Point) Equal(q *Point) bool {
	x := p.x.Mul(q.z).Equal(q.x.Mul(p.z))
	y := p.y.Mul(q.z).Equal(q.y.Mul(p.z))
	return x && y
}

// ToAffine returns the affine coordinates of p, paying one field inversion.
// ok is false for the identity, which has no affine representation.
func (p *Point) ToAffine() (x, y field.Element, ok bool) {
	zInv, err := p.z.Invert()
	if err != nil {
		return field.Zero(), field.Zero(), false
	}
	return p.x.Mul(zInv), p.y.Mul(zInv), true
}

// AffineX returns the affine x-coordinate of p, or zero for the identity.
func (p *Point) AffineX() field.Element {
	x, _, _ := p.ToAffine()
	return x
}

// AffineY returns the affine y-coordinate of p, or zero for the identity.
func (p *Point) AffineY() field.Element {
	_, y, _ := p.ToAffine()
	return y
}

// Select returns a if v == 1 and b if v == 0, without branching on v.
func Select(v int, a, b *Point) *Point {
	r := *b
	r.cmov(v, a)
	return &r
}

// cmov overwrites p with q when v == 1.
func (p *Point) cmov(v int, q *Point) {
	p.x = field.Select(v, q.x, p.x)
	p.y = field.Select(v, q.y, p.y)
	p.z = field.Select(v, q.z, p.z)
}

// String formats p in affine form for debugging.
func (p *Point) String() string {
	x, y, ok := p.ToAffine()
	if !ok {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", x, y)
}
