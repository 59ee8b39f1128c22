package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/rookie-play-service/internal/timeutil"
)

var errInvalidLimit = errors.New("invalid limit (expected a positive integer)")

// dateParam returns the date query value as YYYYMMDD, or "" when absent.
func dateParam(r *http.Request) (string, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return "", nil
	}
	return timeutil.CompactDate(raw)
}

// limitParam returns the limit query value, or 0 when absent so the service default applies.
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errInvalidLimit
	}
	return n, nil
}
