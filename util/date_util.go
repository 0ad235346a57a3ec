package util

import (
	"strings"
	"time"
)

var isoLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string.
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(isoLayout, strings.TrimSpace(value))
}
