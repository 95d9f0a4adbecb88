// Package batch reads bank statement exports and writes classified records.
package batch

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/txcat/internal/model"
)

// Separator is the field separator of statement exports.
const Separator = ';'

// ErrMissingColumn is returned when a required header column is absent.
var ErrMissingColumn = errors.New("missing required column")

// Column aliases, matched case-insensitively against the header row.
var columnAliases = map[string][]string{
	"date":        {"date"},
	"type":        {"type"},
	"description": {"description", "libelle", "libellé", "label"},
	"amount":      {"montant", "amount"},
	"sense":       {"sens", "sense"},
}

// ReadCSV reads a ';'-separated export with a header row such as
// Date;Type;Description;Montant;Sens. Only Description is required.
// Amounts are kept as text so that locale parsing happens in one place.
func ReadCSV(r io.Reader) ([]model.TransactionInput, error) {
	reader := csv.NewReader(r)
	reader.Comma = Separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: description (empty file)", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := indexColumns(header)
	if _, ok := cols["description"]; !ok {
		return nil, fmt.Errorf("%w: description", ErrMissingColumn)
	}

	var inputs []model.TransactionInput
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		in := model.TransactionInput{
			Date:        field(record, cols, "date"),
			Type:        field(record, cols, "type"),
			Description: field(record, cols, "description"),
			Sense:       model.Sense(field(record, cols, "sense")),
		}
		if _, ok := cols["amount"]; ok {
			in.Amount = field(record, cols, "amount")
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for key, aliases := range columnAliases {
			if _, seen := cols[key]; seen {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					cols[key] = i
				}
			}
		}
	}
	return cols
}

func field(record []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Record pairs an input with its decision for output.
type Record struct {
	model.TransactionInput
	model.ClassificationResult
}

// Records zips inputs and results; both must have the same length.
func Records(inputs []model.TransactionInput, results []model.ClassificationResult) ([]Record, error) {
	if len(inputs) != len(results) {
		return nil, fmt.Errorf("mismatched batch: %d inputs, %d results", len(inputs), len(results))
	}
	records := make([]Record, len(inputs))
	for i := range inputs {
		records[i] = Record{TransactionInput: inputs[i], ClassificationResult: results[i]}
	}
	return records, nil
}

// WriteCSV writes records with the input columns followed by the decision.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	writer.Comma = Separator

	header := []string{"Date", "Type", "Description", "Montant", "Sens", "Category", "Subcategory", "Method", "Confidence", "RuleID"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Date,
			r.Type,
			r.Description,
			amountText(r.Amount),
			string(r.Sense),
			r.Category,
			r.SubcategoryOrEmpty(),
			string(r.Method),
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			r.RuleIDOrEmpty(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSONLines writes one JSON object per record.
func WriteJSONLines(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

func amountText(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	default:
		return fmt.Sprint(a)
	}
}
