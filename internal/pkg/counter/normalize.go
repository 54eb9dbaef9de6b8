package counter

import (
	"math"
	"strconv"
)

// Normalize parses a stored value leniently: optional leading whitespace,
// an optional sign and the longest run of leading ASCII digits. Values
// without digits and negative values normalize to 0, digit runs beyond
// int64 saturate at math.MaxInt64.
//
//	""      -> 0
//	"abc"   -> 0
//	"12abc" -> 12
//	" 7"    -> 7
//	"3.9"   -> 3
//	"-5"    -> 0
func Normalize(raw string) int64 {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}

	negative := false
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		negative = raw[i] == '-'
		i++
	}

	var n int64
	digits := 0
	for ; i < len(raw) && raw[i] >= '0' && raw[i] <= '9'; i++ {
		digits++
		d := int64(raw[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			continue
		}
		n = n*10 + d
	}

	if digits == 0 || negative {
		return 0
	}
	return n
}

// Encode returns the storage form of n.
func Encode(n int64) string {
	return strconv.FormatInt(n, 10)
}

func increment(n int64) int64 {
	if n == math.MaxInt64 {
		return n
	}
	return n + 1
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
