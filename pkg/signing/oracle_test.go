package signing

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/secp256k1/pkg/crypto/codec"
	"github.com/Caqil/secp256k1/pkg/crypto/scalar"
)

// Differential tests against btcec, used strictly as an oracle.

// TestOracleSignatures tests that default signatures are byte-identical to btcec
func TestOracleSignatures(t *testing.T) {
	signer, err := NewSigner(nil)
	require.NoError(t, err)

	for i := 0; i < 24; i++ {
		priv := mustGenerateKey(t)
		keyBytes := priv.Bytes()
		h := digest(hex.EncodeToString(keyBytes[:4]) + string(rune(i)))

		sig, err := signer.SignHash(priv, h)
		require.NoError(t, err)

		oracleKey, oraclePub := btcec.PrivKeyFromBytes(keyBytes[:])
		oracleSig := btcecdsa.Sign(oracleKey, h)
		require.Equal(t, oracleSig.Serialize(), sig.DER(), "DER mismatch for key %x", keyBytes)

		pubBytes, err := codec.EncodePoint(priv.PubKey(), true)
		require.NoError(t, err)
		require.Equal(t, oraclePub.SerializeCompressed(), pubBytes)

		parsed, err := btcecdsa.ParseDERSignature(sig.DER())
		require.NoError(t, err)
		require.True(t, parsed.Verify(h, oraclePub))
	}
}

// TestOracleVerifiesOurs tests that btcec accepts high-S signatures from Sign and vice versa
func TestOracleVerifiesOurs(t *testing.T) {
	for i := 0; i < 16; i++ {
		priv := mustGenerateKey(t)
		keyBytes := priv.Bytes()
		h := digest(string(rune('k' + i)))
		k := mustGenerateKey(t).Scalar()

		sig, err := Sign(priv.Scalar(), h, k)
		require.NoError(t, err)

		_, oraclePub := btcec.PrivKeyFromBytes(keyBytes[:])

		var r, s btcec.ModNScalar
		rb, sb := sig.R.Bytes(), sig.S.Bytes()
		require.False(t, r.SetByteSlice(rb[:]))
		require.False(t, s.SetByteSlice(sb[:]))
		require.True(t, btcecdsa.NewSignature(&r, &s).Verify(h, oraclePub))

		pub, err := codec.DecodePoint(oraclePub.SerializeUncompressed())
		require.NoError(t, err)
		require.True(t, Verify(pub, h, sig))
	}
}

// TestOracleRecovery tests recovery ids against btcec compact recovery
func TestOracleRecovery(t *testing.T) {
	signer, err := NewSigner(nil)
	require.NoError(t, err)

	for i := 0; i < 16; i++ {
		priv := mustGenerateKey(t)
		h := digest(string(rune('r' + i)))

		sig, id, err := signer.SignRecoverable(priv, h)
		require.NoError(t, err)

		compact := append([]byte{27 + 4 + id}, sig.Bytes()...)
		oraclePub, wasCompressed, err := btcecdsa.RecoverCompact(compact, h)
		require.NoError(t, err)
		require.True(t, wasCompressed)

		ours, err := codec.EncodePoint(priv.PubKey(), true)
		require.NoError(t, err)
		require.Equal(t, oraclePub.SerializeCompressed(), ours)
	}
}

// TestOracleScalarMult tests k*G against btcec for edge and random scalars
func TestOracleScalarMult(t *testing.T) {
	edges := []scalar.Scalar{
		scalar.One(),
		scalar.FromUint64(2),
		scalar.One().Negate(),
		scalar.MustFromHex("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0"),
		scalar.MustFromHex("00000000000000000000000000000000ffffffffffffffffffffffffffffffff"),
	}
	for i := 0; i < 8; i++ {
		edges = append(edges, mustGenerateKey(t).Scalar())
	}

	for _, k := range edges {
		kb := k.Bytes()
		_, oraclePub := btcec.PrivKeyFromBytes(kb[:])

		priv := mustKey(t, k.String())
		ours, err := codec.EncodePoint(priv.PubKey(), false)
		require.NoError(t, err)
		require.Equal(t, oraclePub.SerializeUncompressed(), ours, "k = %s", k)
	}
}
