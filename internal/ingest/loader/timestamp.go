package loader

import (
	"strconv"
	"time"
)

// Excel stores datetimes as day counts since this epoch; whole numbers are
// days, the fractional part is the time of day. Legacy feeds export raw
// serials instead of formatted dates.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Text layouts seen across the source exports, most specific first.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/2006",
	"02-01-2006 15:04:05",
	time.RFC3339,
}

// ParseTimestamp converts a cell to a timestamp. Numeric cells are day
// serials since the 1899-12-30 epoch; text cells are tried against the
// known layouts. Returns false for empty or unparseable cells, which the
// callers treat as an absent timestamp.
func ParseTimestamp(cell string) (time.Time, bool) {
	if cell == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		return fromSerial(serial), true
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromSerial(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	return serialEpoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
}
