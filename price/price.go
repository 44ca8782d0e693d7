// Package price converts human-authored Indian-currency range strings
// such as "50L-1Cr" into numeric bounds in whole INR.
package price

import (
	"math"
	"strconv"
	"strings"
)

const (
	crore = 10_000_000
	lakh  = 100_000
)

// Range holds derived price bounds in whole INR. A nil field means the
// corresponding bound could not be derived; zero is never used to
// signal absence.
type Range struct {
	Min *int64
	Max *int64
}

// ParseToken parses a single monetary token ("75 Lakh", "2.5Cr",
// "1000000") into whole INR. The unit suffix is matched against the
// uppercased original token, not the stripped digits, with crore
// taking priority over lakh over thousand. A token whose numeric part
// does not parse, or parses to zero, yields ok=false.
func ParseToken(token string) (int64, bool) {
	t := strings.ToUpper(strings.TrimSpace(token))

	var digits strings.Builder
	for _, r := range t {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}

	num, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.Contains(t, "CR") || strings.Contains(t, "CRORE"):
		num *= crore
	case strings.Contains(t, "L") || strings.Contains(t, "LAKH"):
		num *= lakh
	case strings.Contains(t, "K"):
		num *= 1000
	}

	v := int64(math.Round(num))
	if v == 0 {
		// A zero amount is treated as "no value", matching the
		// behavior the persisted data was produced with.
		return 0, false
	}
	return v, true
}

// ParseRange derives price bounds from a free-text range string. The
// string is split on a hyphen or Unicode dash; each side is parsed
// independently with ParseToken. With two parseable tokens the smaller
// becomes Min and the larger Max, so reversed ranges are accepted.
// When exactly one token parses, that value fills both fields. An
// unparseable or empty input returns an empty Range rather than an
// error.
func ParseRange(text string) Range {
	if text == "" {
		return Range{}
	}

	parts := strings.FieldsFunc(text, isDash)
	if len(parts) > 2 {
		parts = parts[:2]
	}

	if len(parts) <= 1 {
		token := text
		if len(parts) == 1 {
			token = parts[0]
		}
		v, ok := ParseToken(token)
		if !ok {
			return Range{}
		}
		return Range{Min: &v, Max: &v}
	}

	a, okA := ParseToken(parts[0])
	b, okB := ParseToken(parts[1])
	switch {
	case okA && okB:
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		return Range{Min: &lo, Max: &hi}
	case okA:
		return Range{Min: &a, Max: &a}
	case okB:
		return Range{Min: &b, Max: &b}
	}
	return Range{}
}

func isDash(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}
