// Package ofx turns OFX/QFX bank statements into classification inputs.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/txcat/internal/model"
	"github.com/aclindsa/ofxgo"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// An SGML opening tag left without its closing bracket at end of line.
	tagFixRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser reads OFX statements.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new OFX parser.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX document and returns one input per
// statement transaction, bank statements first.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.TransactionInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var inputs []model.TransactionInput
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			inputs = append(inputs, convertList(stmt.BankTranList)...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			inputs = append(inputs, convertList(stmt.BankTranList)...)
		}
	}

	p.logger.Info("Parsed OFX file",
		"total_transactions", len(inputs),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return inputs, nil
}

func convertList(list *ofxgo.TransactionList) []model.TransactionInput {
	if list == nil {
		return nil
	}
	inputs := make([]model.TransactionInput, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		inputs = append(inputs, convertTransaction(tx))
	}
	return inputs
}

// convertTransaction maps an OFX transaction onto the classifier input.
// OFX signs amounts; the input carries the magnitude plus a sense.
func convertTransaction(tx ofxgo.Transaction) model.TransactionInput {
	amount, _ := tx.TrnAmt.Float64()
	sense := model.SenseCredit
	if amount < 0 {
		amount = -amount
		sense = model.SenseDebit
	}

	input := model.TransactionInput{
		Description: description(tx),
		Type:        tx.TrnType.String(),
		Amount:      amount,
		Sense:       sense,
	}
	if !tx.DtPosted.IsZero() {
		input.Date = tx.DtPosted.Format("2006-01-02")
	}
	return input
}

// description picks the bank label: NAME, then PAYEE when NAME is empty,
// then MEMO when NAME carries no merchant information.
func description(tx ofxgo.Transaction) string {
	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Payee != nil {
		name = strings.TrimSpace(string(tx.Payee.Name))
	}
	if tx.Memo != "" && (name == "" || isGenericDescription(name)) {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}

// isGenericDescription reports whether a NAME is only a transaction kind.
func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE", "PAIEMENT", "PRELEVEMENT", "VIREMENT":
		return true
	}
	return false
}
