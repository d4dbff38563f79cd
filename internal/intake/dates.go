package intake

import (
	"strings"
	"time"
)

// USCISDateFormat is the only date layout the PDF template accepts.
const USCISDateFormat = "01/02/2006"

// Input layouts accepted from the wizard, probed in order. ISO dates come
// from date pickers, the US layouts from free-text entry, the rest from
// drafts written by older clients.
var acceptedDateFormats = []string{
	"01/02/2006",
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatDateForUSCIS normalizes any parseable date to MM/DD/YYYY.
// Unparseable input passes through unchanged so a bad answer shows up on
// the rendered form instead of failing the whole render.
func FormatDateForUSCIS(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	for _, format := range acceptedDateFormats {
		if parsed, err := time.Parse(format, trimmed); err == nil {
			return parsed.Format(USCISDateFormat)
		}
	}

	return value
}

// SplitWeight splits a 1-3 digit weight into three single-character boxes,
// left-padded with zeros, matching the three adjacent single-digit fields
// on the PDF. The second return is false for anything that is not a 1-3
// digit number.
func SplitWeight(weight string) ([3]string, bool) {
	trimmed := strings.TrimSpace(weight)
	if len(trimmed) == 0 || len(trimmed) > 3 {
		return [3]string{}, false
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return [3]string{}, false
		}
	}

	padded := strings.Repeat("0", 3-len(trimmed)) + trimmed
	return [3]string{
		string(padded[0]),
		string(padded[1]),
		string(padded[2]),
	}, true
}
