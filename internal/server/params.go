package server

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, raw, time.UTC)
}

// parseDatePtr converts an optional "YYYY-MM-DD" string, nil when empty.
func parseDatePtr(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
