package common

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw amount into a float64. It accepts numbers and
// locale-variant text ("29,21", " 1 234,5 "). Anything that cannot be read
// as a finite number yields 0.
func ParseAmount(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case decimal.Decimal:
		return decimalToFloat(v)
	case *string:
		if v == nil {
			return 0
		}
		return parseAmountText(*v)
	case string:
		return parseAmountText(v)
	case json.Number:
		return parseAmountText(v.String())
	default:
		return parseAmountText(fmt.Sprint(v))
	}
}

func parseAmountText(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return decimalToFloat(d)
}

// maxDecimalMagnitude bounds the base-10 order of magnitude converted to
// float64. Anything outside it is infinite or zero as a float64, and
// converting it would expand 10^exp into a big.Int.
const maxDecimalMagnitude = 400

func decimalToFloat(d decimal.Decimal) float64 {
	digits := int64(float64(d.Coefficient().BitLen())*math.Log10(2)) + 1
	magnitude := int64(d.Exponent()) + digits
	if magnitude > maxDecimalMagnitude || magnitude < -maxDecimalMagnitude {
		return 0
	}
	return finiteOrZero(d.InexactFloat64())
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
