package prng

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeedFormat rejects malformed seeds before any stream is created.
var ErrSeedFormat = errors.New("seed must be 1-64 hex digits")

// maxSeedDigits is the full 256-bit width.
const maxSeedDigits = 64

// normDigits is the truncation point: only the first 64 bits of the seed
// participate. Consuming one digit more or less silently desynchronizes
// every downstream trait from the on-chain mirror.
const normDigits = 16

// Normalize converts a hex seed (optional 0x prefix, up to 64 digits) into
// the bounded integer domain shared by all streams: the first 16 digits
// are read as a big-endian uint64 and reduced modulo 2^31-1.
func Normalize(seed string) (uint32, error) {
	h := seed
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}
	if len(h) == 0 || len(h) > maxSeedDigits {
		return 0, fmt.Errorf("%w: got %d digits", ErrSeedFormat, len(h))
	}

	if len(h) > normDigits {
		h = h[:normDigits]
	}

	var v uint64
	for _, c := range h {
		d, ok := hexDigit(c)
		if !ok {
			return 0, fmt.Errorf("%w: invalid digit %q", ErrSeedFormat, c)
		}
		v = v<<4 | uint64(d)
	}

	return uint32(v % MaxState), nil
}

func hexDigit(c rune) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint8(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint8(c-'A') + 10, true
	}
	return 0, false
}
