// Package units parses human-readable byte sizes.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ParseSize converts a decimal byte count with an optional 1024-based
// unit suffix (k, m or g, either case) into a number of bytes:
//
//	"4096" -> 4096
//	"128k" -> 131072
//	"1m"   -> 1048576
//	"2G"   -> 2147483648
//
// Sizes that do not fit an int64 are rejected rather than wrapped.
func ParseSize(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty size")
	}

	number := s
	var shift uint
	switch s[len(s)-1] {
	case 'k', 'K':
		shift, number = 10, s[:len(s)-1]
	case 'm', 'M':
		shift, number = 20, s[:len(s)-1]
	case 'g', 'G':
		shift, number = 30, s[:len(s)-1]
	}

	n, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n > math.MaxInt64>>shift {
		return 0, fmt.Errorf("size %q overflows", s)
	}
	return int64(n << shift), nil
}

// FormatSize renders a byte count the way ParseSize reads it, using
// the largest 1024-based suffix that divides the count evenly:
//
//	4096       -> "4k"
//	1048576    -> "1m"
//	1048577    -> "1048577"
//
// ParseSize(FormatSize(n)) == n for every non-negative n.
func FormatSize(n int64) string {
	switch {
	case n >= 1<<30 && n%(1<<30) == 0:
		return strconv.FormatInt(n>>30, 10) + "g"
	case n >= 1<<20 && n%(1<<20) == 0:
		return strconv.FormatInt(n>>20, 10) + "m"
	case n >= 1<<10 && n%(1<<10) == 0:
		return strconv.FormatInt(n>>10, 10) + "k"
	default:
		return strconv.FormatInt(n, 10)
	}
}
