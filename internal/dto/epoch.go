package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EpochString renders t as epoch milliseconds, the wire form of every date.
func EpochString(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseEpoch parses an epoch-millisecond string.
func ParseEpoch(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch milliseconds %q: %w", s, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// ParseOptionalEpoch parses s when present and returns nil otherwise.
func ParseOptionalEpoch(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseEpoch(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SplitIDs splits a comma separated id list, dropping blanks.
func SplitIDs(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
