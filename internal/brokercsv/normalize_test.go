package brokercsv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "thousands and decimals", raw: "50.353,30", want: 50353.30},
		{name: "small fraction", raw: "0,013756", want: 0.013756},
		{name: "padded dollar amount", raw: " $692,66 ", want: 692.66},
		{name: "euro glyph with inner space", raw: "€ 1.234.567,89", want: 1234567.89},
		{name: "pound and yen", raw: "£12,5¥", want: 12.5},
		{name: "integer", raw: "5", want: 5},
		{name: "negative", raw: "-3,25", want: -3.25},
		{name: "dot only grouping", raw: "1.000", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseLocaleNumber(tt.raw), 1e-9)
		})
	}
}

func TestParseLocaleNumber_Malformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "$", "abc", "12abc", "1,2,3", "Inf", "NaN", "1 000,5", "1e400", "-1e400"} {
		t.Run(raw, func(t *testing.T) {
			assert.True(t, math.IsNaN(ParseLocaleNumber(raw)), "expected NaN for %q", raw)
		})
	}
}

func TestParseBrokerDate(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "01-09-21", want: "2021-09-01", wantOK: true},
		{raw: "15-11-85", want: "1985-11-15", wantOK: true},
		{raw: "1-9-21", want: "2021-09-01", wantOK: true},
		{raw: " 31-12-69 ", want: "2069-12-31", wantOK: true},
		{raw: "01-01-70", want: "1970-01-01", wantOK: true},
		{raw: "29-02-24", want: "2024-02-29", wantOK: true},
		{raw: "29-02-23", wantOK: false},
		{raw: "30-02-21", wantOK: false},
		{raw: "32-01-21", wantOK: false},
		{raw: "01-13-21", wantOK: false},
		{raw: "2021-09-01", wantOK: false},
		{raw: "01/09/21", wantOK: false},
		{raw: "01-09-xx", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseBrokerDate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
