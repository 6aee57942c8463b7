package config

import (
	"strconv"
	"strings"
)

// MaxDelaySeconds is the longest delay a browser setTimeout honors
// (2^31-1 ms); larger timeouts fire immediately.
const MaxDelaySeconds = 2147483

// ParseDelay reads a delay in whole seconds the way a browser number input
// parses its value: leading whitespace is skipped, an optional sign and the
// leading digits are used and anything after them is ignored ("3.7" is 3).
// Input without leading digits and negative values yield 0; values above
// MaxDelaySeconds saturate to it.
func ParseDelay(input string) int {
	s := strings.TrimLeft(input, " \t\r\n")
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n > MaxDelaySeconds {
		return MaxDelaySeconds
	}
	return n
}
