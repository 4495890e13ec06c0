// Package brokercsv reads the broker's semicolon-delimited transaction export.
//
// The export uses European number formatting ("50.353,30") and DD-MM-YY dates.
// Parsing never fails on bad data: every problem becomes a per-row diagnostic
// in a model.ImportPreviewRow. Only structural problems (missing columns,
// unreadable input) are returned as errors.
package brokercsv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// isoDate is the canonical date layout produced by ParseBrokerDate.
const isoDate = "2006-01-02"

var currencyGlyphs = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "")

// ParseLocaleNumber converts a broker-formatted number into a float64.
//
// Currency glyphs ($ € £ ¥) and surrounding whitespace are stripped, every "."
// is removed as a thousands separator and the first "," becomes the decimal
// point:
//
//	ParseLocaleNumber(" $50.353,30 ") // 50353.30
//	ParseLocaleNumber("0,013756")     // 0.013756
//
// The "." handling is specific to this export and is not general locale support.
// Empty, malformed or out-of-range input returns NaN; callers must check math.IsNaN.
func ParseLocaleNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = currencyGlyphs.Replace(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return math.NaN()
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.NaN()
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// ParseBrokerDate converts a DD-MM-YY date into YYYY-MM-DD.
//
// Two-digit years below 70 map to 20xx, the rest to 19xx. The second return
// value is false when the input does not have exactly three parts, the year is
// not numeric, or the result is not a real calendar date (30-02-21).
func ParseBrokerDate(raw string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return "", false
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 0 {
		return "", false
	}
	if year < 70 {
		year += 2000
	} else {
		year += 1900
	}

	iso := fmt.Sprintf("%04d-%s-%s", year, padTwo(parts[1]), padTwo(parts[0]))
	if _, err := time.Parse(isoDate, iso); err != nil {
		return "", false
	}
	return iso, true
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
