package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
	"github.com/Caqil/secp256k1/pkg/crypto/field"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
	"github.com/Caqil/secp256k1/pkg/keygen"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestEncodeGenerator tests the well-known SEC1 encodings of G
func TestEncodeGenerator(t *testing.T) {
	g := curve.Generator()

	compressed, err := EncodePoint(g, true)
	if err != nil {
		t.Fatalf("EncodePoint failed: %v", err)
	}
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if hex.EncodeToString(compressed) != want {
		t.Errorf("compressed G = %x, want %s", compressed, want)
	}

	uncompressed, err := EncodePoint(g, false)
	if err != nil {
		t.Fatalf("EncodePoint failed: %v", err)
	}
	want = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	if hex.EncodeToString(uncompressed) != want {
		t.Errorf("uncompressed G = %x, want %s", uncompressed, want)
	}

	// y(3G) = 388f7b0f...84b8e672 is even
	threeG := curve.ScalarBaseMult(scalar.FromUint64(3))
	c3, err := EncodePoint(threeG, true)
	if err != nil {
		t.Fatalf("EncodePoint failed: %v", err)
	}
	if c3[0] != prefixEven {
		t.Errorf("3G prefix = 0x%02x, want 0x02", c3[0])
	}

	if _, err := EncodePoint(curve.Identity(), true); !errors.Is(err, curve.ErrPointAtInfinityInvalid) {
		t.Errorf("Expected ErrPointAtInfinityInvalid, got %v", err)
	}
}

// TestPointRoundTrip tests compress/decompress and uncompressed round trips
func TestPointRoundTrip(t *testing.T) {
	for i := uint64(1); i <= 16; i++ {
		p := curve.ScalarBaseMult(scalar.FromUint64(i * 0x9e3779b97f4a7c15))
		for _, compressed := range []bool{true, false} {
			enc, err := EncodePoint(p, compressed)
			if err != nil {
				t.Fatalf("EncodePoint failed: %v", err)
			}
			dec, err := DecodePoint(enc)
			if err != nil {
				t.Fatalf("DecodePoint(%x) failed: %v", enc, err)
			}
			if !dec.Equal(p) {
				t.Errorf("round trip mismatch for compressed=%v", compressed)
			}
		}
	}
}

// TestDecodePointRejects tests every rejection path of DecodePoint
func TestDecodePointRejects(t *testing.T) {
	g, _ := EncodePoint(curve.Generator(), false)
	offCurve := append([]byte(nil), g...)
	offCurve[len(offCurve)-1] ^= 0x01

	prime := field.Prime()
	xTooBig := append([]byte{prefixEven}, prime[:]...)

	// x = 0 gives x^3 + 7 = 7, which is not a square mod p
	noRoot := make([]byte, CompressedSize)
	noRoot[0] = prefixEven

	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, ErrInvalidEncoding},
		{"infinity", []byte{0x00}, curve.ErrPointAtInfinityInvalid},
		{"infinity with payload", make([]byte, CompressedSize), curve.ErrPointAtInfinityInvalid},
		{"hybrid prefix", append([]byte{0x06}, g[1:]...), ErrInvalidEncoding},
		{"compressed prefix, uncompressed length", append([]byte{prefixEven}, g[1:]...), ErrInvalidEncoding},
		{"truncated", g[:40], ErrInvalidEncoding},
		{"x >= p", xTooBig, ErrInvalidEncoding},
		{"x >= p matches field error", xTooBig, field.ErrInvalidEncoding},
		{"no square root", noRoot, curve.ErrPointNotOnCurve},
		{"uncompressed off curve", offCurve, curve.ErrPointNotOnCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePoint(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestScalarEncoding tests canonical scalar and private key decoding
func TestScalarEncoding(t *testing.T) {
	s := scalar.MustFromHex("00000000000000000000000000000000000000000000000000000000deadbeef")
	enc := EncodeScalar(s)
	dec, err := DecodeScalar(enc[:])
	if err != nil || !dec.Equal(s) {
		t.Fatalf("DecodeScalar round trip failed: %v", err)
	}

	n := scalar.Order()
	if _, err := DecodeScalar(n[:]); !errors.Is(err, ErrInvalidEncoding) || !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Errorf("Expected ErrInvalidEncoding wrapping ErrInvalidScalar, got %v", err)
	}

	if _, err := DecodePrivateKey(enc[:31]); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
	if _, err := DecodePrivateKey(make([]byte, 32)); !errors.Is(err, keygen.ErrInvalidPrivateKey) {
		t.Errorf("Expected ErrInvalidPrivateKey, got %v", err)
	}
	priv, err := DecodePrivateKey(enc[:])
	if err != nil {
		t.Fatalf("DecodePrivateKey failed: %v", err)
	}
	if !priv.Scalar().Equal(s) {
		t.Error("private key mismatch")
	}
}

// TestCompactSignature tests r || s encoding
func TestCompactSignature(t *testing.T) {
	r := scalar.FromUint64(1)
	s := scalar.One().Negate()

	enc := EncodeSignatureCompact(r, s)
	gotR, gotS, err := DecodeSignatureCompact(enc[:])
	if err != nil {
		t.Fatalf("DecodeSignatureCompact failed: %v", err)
	}
	if !gotR.Equal(r) || !gotS.Equal(s) {
		t.Error("compact round trip mismatch")
	}

	if _, _, err := DecodeSignatureCompact(enc[:63]); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding for short input, got %v", err)
	}

	zeroR := enc
	copy(zeroR[:32], make([]byte, 32))
	if _, _, err := DecodeSignatureCompact(zeroR[:]); !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Errorf("Expected ErrInvalidScalar for r = 0, got %v", err)
	}

	n := scalar.Order()
	highS := enc
	copy(highS[32:], n[:])
	if _, _, err := DecodeSignatureCompact(highS[:]); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding for s = n, got %v", err)
	}
}

// TestDERKnownEncodings tests minimal INTEGER encoding including sign padding
func TestDERKnownEncodings(t *testing.T) {
	tests := []struct {
		name string
		r, s scalar.Scalar
		want string
	}{
		{"small", scalar.FromUint64(1), scalar.FromUint64(1), "3006020101020101"},
		{"sign padding", scalar.FromUint64(0x80), scalar.FromUint64(0x7f), "30070202008002017f"},
		{
			"full width",
			scalar.One().Negate(),
			scalar.FromUint64(0x0100),
			"3027022100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140" + "02020100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			der, err := EncodeSignatureDER(tt.r, tt.s)
			if err != nil {
				t.Fatalf("EncodeSignatureDER failed: %v", err)
			}
			if hex.EncodeToString(der) != tt.want {
				t.Errorf("DER = %x, want %s", der, tt.want)
			}

			r, s, err := DecodeSignatureDER(der)
			if err != nil {
				t.Fatalf("DecodeSignatureDER failed: %v", err)
			}
			if !r.Equal(tt.r) || !s.Equal(tt.s) {
				t.Error("DER round trip mismatch")
			}
		})
	}
}

// TestDERRejectsMalformed tests strict DER parsing
func TestDERRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		der  string
	}{
		{"empty", ""},
		{"not a sequence", "3106020101020101"},
		{"trailing data", "300602010102010100"},
		{"trailing in sequence", "3009020101020101020101"},
		{"non-minimal integer", "300702020001020101"},
		{"negative integer", "3006020180020101"},
		{"zero r", "3006020100020101"},
		{"missing s", "3003020101"},
		{"long form length", "308106020101020101"},
		{"r = n", "3027022100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036414102020100"},
		{"oversized integer", "302802220100fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036414002020100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeSignatureDER(mustHex(t, tt.der)); !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("Expected ErrInvalidEncoding for %s, got %v", tt.der, err)
			}
		})
	}

	if _, _, err := DecodeSignatureDER(bytes.Repeat([]byte{0x30}, MaxDERSignatureSize+1)); !errors.Is(err, ErrInvalidDER) {
		t.Errorf("Expected ErrInvalidDER for oversized input, got %v", err)
	}
}
