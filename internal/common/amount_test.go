package common

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	text := "12,50"

	tests := []struct {
		raw  any
		name string
		want float64
	}{
		{name: "nil", raw: nil, want: 0},
		{name: "comma decimal", raw: "29,21", want: 29.21},
		{name: "dot decimal", raw: "29.21", want: 29.21},
		{name: "negative", raw: "-12.5", want: -12.5},
		{name: "surrounding whitespace", raw: "  7,5 ", want: 7.5},
		{name: "embedded spaces", raw: "1 234,56", want: 1234.56},
		{name: "garbage", raw: "abc", want: 0},
		{name: "empty", raw: "", want: 0},
		{name: "two separators", raw: "1,234.56", want: 0},
		{name: "nan text", raw: "NaN", want: 0},
		{name: "inf text", raw: "Inf", want: 0},
		{name: "overflowing exponent", raw: "1e400", want: 0},
		{name: "large exponent", raw: "1e300", want: 1e300},
		{name: "underflowing exponent", raw: "1e-400", want: 0},
		{name: "float", raw: 29.21, want: 29.21},
		{name: "nan float", raw: math.NaN(), want: 0},
		{name: "int", raw: 42, want: 42},
		{name: "json number", raw: json.Number("3.5"), want: 3.5},
		{name: "decimal", raw: decimal.RequireFromString("8.25"), want: 8.25},
		{name: "string pointer", raw: &text, want: 12.5},
		{name: "nil string pointer", raw: (*string)(nil), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
		})
	}
}

func TestParseAmount_ExactCommaDecimal(t *testing.T) {
	assert.Equal(t, 29.21, ParseAmount("29,21"))
}

func TestParseAmount_HugeExponentReturnsQuickly(t *testing.T) {
	inputs := []any{
		"1e50000000",
		"-1e30000000",
		"1e-50000000",
		"12,5e2147483647",
		decimal.New(1, 50000000),
	}

	for _, raw := range inputs {
		start := time.Now()
		got := ParseAmount(raw)
		assert.Zero(t, got, "%v", raw)
		assert.Less(t, time.Since(start), time.Second, "%v", raw)
	}
}
