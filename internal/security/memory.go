package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureZero overwrites a byte slice holding secret material.
// The copy goes through crypto/subtle so the compiler cannot drop it as a
// dead store.
func SecureZero(data []byte) {
	if len(data) == 0 {
		return
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	runtime.KeepAlive(data)
}

// SecureZeroLimbs overwrites a limb slice holding secret material.
func SecureZeroLimbs(limbs []uint64) {
	for i := range limbs {
		limbs[i] = 0
	}

	runtime.KeepAlive(limbs)
}
