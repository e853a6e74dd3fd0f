// Package curve implements the secp256k1 group: points, the group law and
// scalar multiplication.
//
// Points are kept in homogeneous projective coordinates (X : Y : Z) with
// affine x = X/Z and y = Y/Z; the identity is (0 : 1 : 0). Addition and
// doubling use the complete formulas of Renes, Costello and Batina
// ("Complete addition formulas for prime order elliptic curves", 2016,
// algorithms 7 and 9 specialised to a = 0). They are valid for every pair of
// inputs, including the identity, P == Q and P == -Q, so the group law has no
// data-dependent branches and needs no field inversion until ToAffine.
package curve

import (
	"github.com/Caqil/secp256k1/pkg/crypto/field"
)

const (
	// Name of the curve
	Name = "secp256k1"

	// B is the constant term of y^2 = x^3 + B.
	B = 7

	// b3 is 3*B, the constant used by the complete formulas.
	b3 = 3 * B
)

var (
	curveB = field.FromUint64(B)

	generatorX = field.MustFromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	generatorY = field.MustFromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

// Generator returns the base point G.
func Generator() *Point {
	return &Point{x: generatorX, y: generatorY, z: field.One()}
}

// Identity returns the point at infinity.
func Identity() *Point {
	return &Point{x: field.Zero(), y: field.One(), z: field.Zero()}
}

// IsOnCurveAffine reports whether (x, y) satisfies y^2 = x^3 + 7.
func IsOnCurveAffine(x, y field.Element) bool {
	return y.Square().Equal(x.Square().Mul(x).Add(curveB))
}
