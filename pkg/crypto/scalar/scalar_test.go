package scalar

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Caqil/secp256k1/pkg/crypto/field"
)

func randomScalar(t *testing.T) Scalar {
	t.Helper()
	var buf [Size]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatalf("Failed to read randomness: %v", err)
	}
	s, err := FromBytes(buf[:])
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	return s
}

// TestOrder tests the exposed group order
func TestOrder(t *testing.T) {
	n := Order()
	want := "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	if got := hex.EncodeToString(n[:]); got != want {
		t.Errorf("Order() = %s, want %s", got, want)
	}
}

// TestScalarAxioms tests ring laws and inversion
func TestScalarAxioms(t *testing.T) {
	for i := 0; i < 32; i++ {
		a, b, c := randomScalar(t), randomScalar(t), randomScalar(t)

		if !a.Add(b).Equal(b.Add(a)) || !a.Mul(b).Equal(b.Mul(a)) {
			t.Fatal("operations are not commutative")
		}
		if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
			t.Fatal("Add is not associative")
		}
		if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
			t.Fatal("Mul is not associative")
		}
		if !a.Sub(b).Add(b).Equal(a) {
			t.Fatal("(a - b) + b != a")
		}
		if !a.Add(a.Negate()).IsZero() {
			t.Fatal("a + (-a) != 0")
		}

		if a.IsZero() {
			continue
		}
		inv, err := a.Invert()
		if err != nil {
			t.Fatalf("Invert failed: %v", err)
		}
		if !a.Mul(inv).Equal(One()) {
			t.Fatal("a * a^-1 != 1")
		}
		back, _ := inv.Invert()
		if !back.Equal(a) {
			t.Fatal("invert(invert(a)) != a")
		}
	}

	if _, err := Zero().Invert(); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}

// TestDecodingRanges tests the three decoding strictness levels
func TestDecodingRanges(t *testing.T) {
	n := Order()

	s, err := FromBytes(n[:])
	if err != nil || !s.IsZero() {
		t.Errorf("FromBytes(n) should reduce to 0, got %s, %v", s, err)
	}

	if _, err := FromCanonicalBytes(n[:]); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("Expected ErrInvalidScalar for n, got %v", err)
	}

	var zero [Size]byte
	if _, err := FromBytesNonZero(zero[:]); !errors.Is(err, ErrInvalidScalar) {
		t.Errorf("Expected ErrInvalidScalar for 0, got %v", err)
	}

	nMinus1 := One().Negate().Bytes()
	if _, err := FromBytesNonZero(nMinus1[:]); err != nil {
		t.Errorf("n-1 should be accepted: %v", err)
	}

	if _, err := FromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
}

// TestFromFieldElement tests the explicit x mod n conversion
func TestFromFieldElement(t *testing.T) {
	// p - 1 mod n = p - 1 - n
	pMinus1 := field.One().Negate()
	got := FromFieldElement(pMinus1)
	want := MustFromHex("000000000000000000000000000000014551231950b75fc4402da1722fc9baed")
	if !got.Equal(want) {
		t.Errorf("FromFieldElement(p-1) = %s, want %s", got, want)
	}

	small := FromFieldElement(field.FromUint64(42))
	if !small.Equal(FromUint64(42)) {
		t.Errorf("FromFieldElement(42) = %s", small)
	}
}

// TestIsHigh tests the low-S boundary
func TestIsHigh(t *testing.T) {
	half := MustFromHex("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0")
	if half.IsHigh() {
		t.Error("n/2 must not be high")
	}
	if !half.Add(One()).IsHigh() {
		t.Error("n/2 + 1 must be high")
	}
	if One().IsHigh() || !One().Negate().IsHigh() {
		t.Error("IsHigh mismatch at the extremes")
	}
}

// TestWipe tests that Wipe clears the value
func TestWipe(t *testing.T) {
	s := randomScalar(t)
	s.Wipe()
	if !s.IsZero() {
		t.Error("Wipe left a non-zero scalar")
	}
}

// TestSelect tests branchless selection
func TestSelect(t *testing.T) {
	a, b := FromUint64(5), FromUint64(9)
	if !Select(1, a, b).Equal(a) || !Select(0, a, b).Equal(b) {
		t.Error("Select returned the wrong operand")
	}
}
