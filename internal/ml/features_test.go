package ml

import (
	"testing"

	"github.com/Veraticus/txcat/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFeaturesFrom(t *testing.T) {
	f := FeaturesFrom(model.TransactionInput{
		Description: "CB LE JUBILE",
		Type:        "CARD",
		Amount:      "12,40",
		Sense:       model.SenseDebit,
	})

	assert.Equal(t, Features{Description: "CB LE JUBILE", Type: "CARD", Sense: "DEBIT", Amount: 12.4}, f)
}

func TestFeaturesFrom_MissingFields(t *testing.T) {
	f := FeaturesFrom(model.TransactionInput{})
	assert.Equal(t, Features{}, f)

	f = FeaturesFrom(model.TransactionInput{Amount: "n/a"})
	assert.Zero(t, f.Amount)
}

func TestTokens(t *testing.T) {
	tokens := Tokens(Features{
		Description: "SnP*SPEED  Pizza-Lille",
		Type:        "Card",
		Sense:       "DEBIT",
		Amount:      -23.5,
	})

	assert.Equal(t, []string{"snp", "speed", "pizza", "lille", "type:card", "sense:debit", "amount:-lt50"}, tokens)
}

func TestTokens_Empty(t *testing.T) {
	assert.Equal(t, []string{"amount:0"}, Tokens(Features{}))
}

func TestAmountBucket(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{"0", 0},
		{"lt10", 9.99},
		{"lt50", 10},
		{"lt100", 99},
		{"lt500", 120},
		{"lt1000", 999.99},
		{"ge1000", 1500},
		{"-lt10", -3},
		{"-ge1000", -2500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountBucket(tt.amount), "amount %v", tt.amount)
	}
}
