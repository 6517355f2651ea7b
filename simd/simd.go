// Package simd provides portable byte-scanning primitives used by package
// prefilter to narrow candidate match positions before the tree-walk
// matcher verifies them.
//
// Unlike the teacher engine this package is adapted from, there is no
// assembly here: the retrieved reference tree declares AVX2-backed
// functions (memchrAVX2 and friends) but does not carry the .s files that
// implement them, so there is nothing concrete to port. What *is* ported
// is the dispatch idea — detect a wide-SIMD-capable CPU once at init and
// prefer the chunkier of two pure-Go implementations on it — applied here
// to an 8-byte SWAR loop instead of real vector instructions.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// hasAVX2 is read once at package init and used only by IndexByte, to
// decide whether the CPU is fast enough at unaligned 64-bit loads to prefer
// the chunked scan over the plain byte loop. It never gates correctness,
// only which of two equivalent pure-Go paths runs. IndexDigit and IsASCII
// do not consult it.
var hasAVX2 = cpu.X86.HasAVX2

// chunkThreshold is the haystack length above which the chunked scan is
// tried first. Below it the fixed cost of the chunk loop isn't worth it.
const chunkThreshold = 16

// IndexByte returns the index of the first occurrence of needle in
// haystack at or after start, or -1 if absent.
func IndexByte(haystack []byte, needle byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(haystack) {
		return -1
	}
	rest := haystack[start:]

	if hasAVX2 && len(rest) >= chunkThreshold {
		if i := indexByteSWAR(rest, needle); i >= 0 {
			return start + i
		}
		return -1
	}
	if i := indexByteScalar(rest, needle); i >= 0 {
		return start + i
	}
	return -1
}

func indexByteScalar(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// indexByteSWAR processes 8 bytes at a time using the classic
// has-zero-byte bit trick: XOR each byte lane against the needle broadcast
// across all 8 lanes, then test for any zero lane.
func indexByteSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	needleWord := broadcast(needle)

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if hasZeroByte(chunk ^ needleWord) {
			for j := 0; j < 8; j++ {
				if haystack[i+j] == needle {
					return i + j
				}
			}
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func broadcast(b byte) uint64 {
	w := uint64(b)
	w |= w << 8
	w |= w << 16
	w |= w << 32
	return w
}

// hasZeroByte reports whether any of the 8 bytes packed into w is zero.
func hasZeroByte(w uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w-lo)&^w&hi != 0
}

// IndexDigit returns the index of the first ASCII digit ('0'..'9') in
// haystack at or after start, or -1 if none is present.
func IndexDigit(haystack []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= len(haystack) {
		return -1
	}
	for i := start; i < len(haystack); i++ {
		if haystack[i] >= '0' && haystack[i] <= '9' {
			return i
		}
	}
	return -1
}

// IsASCII reports whether every byte in data is < 0x80, testing the high
// bit of 8 bytes at a time as indexByteSWAR reads them. Used by package prefilter to
// decide whether byte offsets and rune offsets coincide for a haystack,
// which is what makes the byte-oriented fast path safe to use at all.
func IsASCII(data []byte) bool {
	n := len(data)
	if n < 8 {
		for _, b := range data {
			if b >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)
	i := 0
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&hi8 != 0 {
			return false
		}
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
