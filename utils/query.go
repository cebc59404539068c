// utils/query.go - query string parsing helpers shared by list endpoints
package utils

import "strconv"

// ParseIntDefault parses s as an int, falling back to def on empty or bad input.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ClampInt bounds n to [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Page reads limit and offset query values with sane bounds.
func Page(limitRaw, offsetRaw string, defLimit, maxLimit int) (limit, offset int) {
	limit = ClampInt(ParseIntDefault(limitRaw, defLimit), 1, maxLimit)
	offset = MaxInt(ParseIntDefault(offsetRaw, 0), 0)
	return limit, offset
}
