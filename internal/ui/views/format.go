package views

import (
	"strconv"
	"time"

	"github.com/hance08/tally/internal/constants"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(constants.DateTimeFormat)
}

func formatVersion(v int64) string {
	return "v" + strconv.FormatInt(v, 10)
}

// shortID trims UUIDs for table columns.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
