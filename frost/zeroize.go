package frost

import "crypto/subtle"

// Zeroize overwrites b with zero bytes. The write goes through
// crypto/subtle so the compiler cannot elide it as a dead store.
func Zeroize(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

// ZeroizeAll overwrites every given slice with zero bytes.
func ZeroizeAll(slices ...[]byte) {
	for _, s := range slices {
		Zeroize(s)
	}
}
