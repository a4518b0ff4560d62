package tick

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "tick:"

// Parse reads the form produced by ID.String: "tick:" followed by exactly
// eight hex digits. Lowercase digits are accepted.
func Parse(s string) (ID, error) {
	hex, ok := strings.CutPrefix(s, prefix)
	if !ok || len(hex) != 8 {
		return Zero, fmt.Errorf("parse tick %q: want %s followed by 8 hex digits", s, prefix)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Zero, fmt.Errorf("parse tick %q: %w", s, err)
	}
	return New(uint32(v)), nil
}

// ParseLoose accepts either the ID.String form or a bare decimal count.
func ParseLoose(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, prefix) {
		return Parse(s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Zero, fmt.Errorf("parse tick %q: want a decimal uint32 or %sXXXXXXXX", s, prefix)
	}
	return New(uint32(v)), nil
}
