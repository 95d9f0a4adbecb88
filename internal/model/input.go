// Package model defines the core data structures for the txcat application.
package model

// Sense is the debit/credit direction reported by the bank.
// The classifier treats it as opaque text.
type Sense string

// Sense constants.
const (
	SenseDebit  Sense = "DEBIT"
	SenseCredit Sense = "CREDIT"
)

// TransactionInput is a single bank transaction submitted for classification.
// Callers own it; the classification core only reads it.
type TransactionInput struct {
	// Amount may hold a number or locale-variant text such as "29,21".
	Amount      any    `json:"amount"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Sense       Sense  `json:"sense"`
}
