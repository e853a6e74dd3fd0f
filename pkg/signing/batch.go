package signing

import (
	"runtime"
	"sort"
	"sync"

	"github.com/Caqil/secp256k1/pkg/crypto/curve"
)

// BatchItem is one (key, hash, signature) triple to verify
type BatchItem struct {
	PublicKey   *curve.Point
	MessageHash []byte
	Signature   *Signature
}

// BatchVerifyResult represents the result of batch verification
type BatchVerifyResult struct {
	Valid         bool
	FailedIndices []int
	TotalChecked  int
}

// VerifyBatch verifies items with a pool of workers and reports the
// indices that failed in ascending order. workers <= 0 means GOMAXPROCS.
// Each item is checked independently with Verify, so the result is exactly
// what sequential verification would give.
func VerifyBatch(items []BatchItem, workers int) *BatchVerifyResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(items) {
		workers = len(items)
	}

	result := &BatchVerifyResult{
		Valid:         true,
		FailedIndices: []int{},
		TotalChecked:  len(items),
	}

	tasks := make(chan int, len(items))
	failed := make(chan int, len(items))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				it := items[i]
				if !Verify(it.PublicKey, it.MessageHash, it.Signature) {
					failed <- i
				}
			}
		}()
	}

	for i := range items {
		tasks <- i
	}
	close(tasks)

	wg.Wait()
	close(failed)

	for idx := range failed {
		result.Valid = false
		result.FailedIndices = append(result.FailedIndices, idx)
	}
	sort.Ints(result.FailedIndices)

	return result
}
