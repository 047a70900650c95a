package duration

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var unitScale = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond,
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
}

// Parse reads a human duration such as "2s", "1h30m", or "1.5d". It accepts
// everything time.ParseDuration does plus day and week units, and terms may
// be separated by spaces.
func Parse(value string) (time.Duration, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		s = strings.TrimSpace(s[1:])
	}

	var total float64
	seen := false
	for s != "" {
		num, unit, rest, ok := nextTerm(s)
		if !ok {
			return 0, false
		}
		scale, ok := unitScale[strings.ToLower(unit)]
		if !ok {
			return 0, false
		}
		total += num * float64(scale)
		if math.IsNaN(total) || math.Abs(total) > float64(math.MaxInt64) {
			return 0, false
		}
		seen = true
		s = strings.TrimSpace(rest)
	}
	if !seen {
		return 0, false
	}
	if neg {
		total = -total
	}
	return time.Duration(math.Round(total)), true
}

// nextTerm splits one number+unit pair off the front of s, e.g.
// "1h30m" -> (1, "h", "30m").
func nextTerm(s string) (num float64, unit, rest string, ok bool) {
	i, dots := 0, 0
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		if s[i] == '.' {
			dots++
		}
		i++
	}
	if i == 0 || dots > 1 {
		return 0, "", "", false
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", "", false
	}
	j := i
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	if j == i {
		return 0, "", "", false
	}
	return n, s[i:j], s[j:], true
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
