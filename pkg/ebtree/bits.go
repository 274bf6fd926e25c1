package ebtree

import "math/bits"

// fls returns the position of the highest set bit of x (0-indexed),
// i.e. floor(log2(x)). Callers only ever call it with x != 0 (two
// distinct keys always differ in at least one bit).
func fls[K Unsigned](x K) int {
	return bits.Len64(uint64(x)) - 1
}

// bitAt returns 0 or 1: the value of key's bit at position b.
func bitAt[K Unsigned](key K, b int32) side {
	return side((key >> uint(b)) & 1)
}
