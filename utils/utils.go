// utils.go — low-level helpers shared by the debug dumpers and the
// benchmark harness.
package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// S2b converts a string to a []byte **without** allocation.
// ⚠️ The result must never be written to.
//
//go:nosplit
//go:inline
func S2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

///////////////////////////////////////////////////////////////////////////////
// Direct Output — No fmt, No Buffering
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes a message straight to stderr (fd 2), bypassing fmt
// and any buffered writer. Cold paths only.
//
//go:nosplit
func PrintWarning(msg string) {
	_, _ = syscall.Write(2, S2b(msg))
}

///////////////////////////////////////////////////////////////////////////////
// Formatting — Alloc-Free Decimal Append
///////////////////////////////////////////////////////////////////////////////

// AppendUint appends the decimal form of v to dst and returns the
// extended slice. Avoids strconv on the dump path.
//
//go:nosplit
//go:inline
func AppendUint(dst []byte, v uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

///////////////////////////////////////////////////////////////////////////////
// Hash & Mixers — Seed Spreading for Deterministic Workloads
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Used to spread scenario seeds across the PRNG state space.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
