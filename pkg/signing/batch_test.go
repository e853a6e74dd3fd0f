package signing

import (
	"testing"
)

func makeBatch(t *testing.T, size int) []BatchItem {
	t.Helper()
	signer, _ := NewSigner(nil)
	items := make([]BatchItem, size)
	for i := range items {
		priv := mustGenerateKey(t)
		h := digest(string(rune('0' + i)))
		sig, err := signer.SignHash(priv, h)
		if err != nil {
			t.Fatalf("SignHash failed: %v", err)
		}
		items[i] = BatchItem{PublicKey: priv.PubKey(), MessageHash: h, Signature: sig}
	}
	return items
}

// TestVerifyBatchAllValid tests a batch of valid signatures
func TestVerifyBatchAllValid(t *testing.T) {
	items := makeBatch(t, 10)

	for _, workers := range []int{0, 1, 3, 32} {
		result := VerifyBatch(items, workers)
		if !result.Valid || len(result.FailedIndices) != 0 {
			t.Errorf("workers=%d: expected all valid, failed %v", workers, result.FailedIndices)
		}
		if result.TotalChecked != len(items) {
			t.Errorf("TotalChecked = %d, want %d", result.TotalChecked, len(items))
		}
	}
}

// TestVerifyBatchReportsFailures tests that failing indices are reported in order
func TestVerifyBatchReportsFailures(t *testing.T) {
	items := makeBatch(t, 10)
	items[2].MessageHash = digest("forged")
	items[7].PublicKey = items[8].PublicKey
	items[9].Signature = nil

	result := VerifyBatch(items, 4)
	if result.Valid {
		t.Fatal("batch with forgeries reported valid")
	}
	want := []int{2, 7, 9}
	if len(result.FailedIndices) != len(want) {
		t.Fatalf("FailedIndices = %v, want %v", result.FailedIndices, want)
	}
	for i := range want {
		if result.FailedIndices[i] != want[i] {
			t.Errorf("FailedIndices = %v, want %v", result.FailedIndices, want)
			break
		}
	}
}

// TestVerifyBatchEmpty tests an empty batch
func TestVerifyBatchEmpty(t *testing.T) {
	result := VerifyBatch(nil, 4)
	if !result.Valid || result.TotalChecked != 0 {
		t.Errorf("empty batch: %+v", result)
	}
}
