// Package util holds small size helpers shared by config and infra adapters.
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	unit  = 1024
	units = "KMGTPEZY"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ParseBytes reads sizes such as "512", "100KB", "1.5 MB" or "32M".
// Units are binary and case-insensitive, matching echo's BodyLimit.
func ParseBytes(size string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return 0, errors.New("size is empty")
	}

	s = strings.TrimSuffix(s, "B")
	multiplier := int64(1)
	if n := len(s); n > 0 {
		if idx := strings.IndexByte(units, s[n-1]); idx >= 0 && idx < 4 {
			for range idx + 1 {
				multiplier *= unit
			}
			s = s[:n-1]
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || value < 0 {
		return 0, errors.Errorf("invalid size %q", size)
	}

	return int64(value * float64(multiplier)), nil
}
