package verdict

import (
	"fmt"
	"strings"
)

// ParseHistory reads a compact history string such as "0011" or "FFTT".
// Accepted characters are 1/0, t/f and T/F; underscores, commas and
// spaces are ignored as separators.
func ParseHistory(s string) (History, error) {
	h := make(History, 0, len(s))
	for i, r := range s {
		switch r {
		case '1', 't', 'T':
			h = append(h, true)
		case '0', 'f', 'F':
			h = append(h, false)
		case '_', ',', ' ':
		default:
			return nil, ArgumentError{
				Param:   "history",
				Message: fmt.Sprintf("unexpected %q at offset %d", r, i),
			}
		}
	}
	return h, nil
}

// ParseObservation reads a single observation token such as "1",
// "true" or "F".
func ParseObservation(tok string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "1", "t", "true", "yes", "y":
		return true, nil
	case "0", "f", "false", "no", "n":
		return false, nil
	}
	return false, ArgumentError{Param: "observation", Message: fmt.Sprintf("cannot parse %q", tok)}
}

// String renders h in the compact form accepted by ParseHistory.
func (h History) String() string {
	var sb strings.Builder
	sb.Grow(len(h))
	for _, v := range h {
		if v {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}
	return sb.String()
}
