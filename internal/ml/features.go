// Package ml adapts an externally trained probabilistic classifier to the
// transaction classification pipeline.
package ml

import (
	"math"
	"strings"
	"unicode"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
)

// Features is the record handed to the probabilistic model.
type Features struct {
	Description string
	Type        string
	Sense       string
	Amount      float64
}

// FeaturesFrom assembles the feature record for a transaction. Missing text
// fields stay empty and unparseable amounts become zero.
func FeaturesFrom(txn model.TransactionInput) Features {
	return Features{
		Description: txn.Description,
		Type:        txn.Type,
		Sense:       string(txn.Sense),
		Amount:      common.ParseAmount(txn.Amount),
	}
}

// Tokens turns a feature record into the document used by the bayesian model.
// The same tokenization must be used when the model is trained.
func Tokens(f Features) []string {
	words := strings.FieldsFunc(strings.ToLower(f.Description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words)+3)
	tokens = append(tokens, words...)
	if t := strings.TrimSpace(f.Type); t != "" {
		tokens = append(tokens, "type:"+strings.ToLower(t))
	}
	if s := strings.TrimSpace(f.Sense); s != "" {
		tokens = append(tokens, "sense:"+strings.ToLower(s))
	}
	tokens = append(tokens, "amount:"+AmountBucket(f.Amount))
	return tokens
}

// AmountBucket maps an amount to a coarse, sign-aware magnitude bucket.
func AmountBucket(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	abs := math.Abs(amount)

	switch {
	case abs == 0:
		return "0"
	case abs < 10:
		return sign + "lt10"
	case abs < 50:
		return sign + "lt50"
	case abs < 100:
		return sign + "lt100"
	case abs < 500:
		return sign + "lt500"
	case abs < 1000:
		return sign + "lt1000"
	default:
		return sign + "ge1000"
	}
}
