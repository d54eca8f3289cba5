// Package base32 implements the geohash base32 alphabet and its inverse
// lookup table.
//
// The alphabet differs from the RFC 4648 base32 alphabet: it drops the
// letters 'a', 'i', 'l' and 'o' to avoid visual ambiguity with digits.
// Lookups are case-sensitive; uppercase symbols are not part of the
// alphabet and never decode.
package base32

import "sync"

// Alphabet is the 32-symbol geohash alphabet. Each symbol carries exactly
// 5 bits of interleaved longitude/latitude refinement.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// decodeMap returns the symbol-to-value table, building it on first use.
// The table is immutable once built; sync.OnceValue makes the build safe
// under concurrent first callers.
var decodeMap = sync.OnceValue(buildDecodeMap)

// buildDecodeMap builds a 128-entry ASCII table with -1 marking bytes
// outside the alphabet.
func buildDecodeMap() *[128]int8 {
	var m [128]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = int8(i)
	}

	return &m
}

// Encode returns the symbol for a 5-bit value.
//
// The value must be in [0, 31]; anything larger is a programming error and
// panics via the bounds check.
func Encode(v byte) byte {
	return Alphabet[v]
}

// Decode returns the 5-bit value of a symbol.
//
// The second return value is false when c is not one of the 32 recognized
// symbols. Only the exact lowercase-and-digit set decodes; 'a', 'i', 'l',
// 'o', uppercase letters and non-ASCII bytes do not.
func Decode(c byte) (byte, bool) {
	if c >= 128 {
		return 0, false
	}

	v := decodeMap()[c]
	if v < 0 {
		return 0, false
	}

	return byte(v), true
}
