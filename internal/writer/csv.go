// Package writer renders parsed transactions for the CLI batch mode.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/expensewise/sms-parser/internal/models"
)

// CSVWriter writes transaction records to CSV format.
type CSVWriter struct {
	IncludeRaw bool // append the raw message body as a last column
}

// WriteToFile writes records to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []*models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes records in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, txns []*models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"ID", "Timestamp", "Bank", "Type", "Amount", "Currency", "Merchant", "Account", "Balance", "Reference", "Card"}
	if w.IncludeRaw {
		header = append(header, "Raw")
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range txns {
		balance := ""
		if txn.Balance != nil {
			balance = txn.Balance.StringFixed(2)
		}
		row := []string{
			txn.GenerateID(),
			strconv.FormatInt(txn.Timestamp, 10),
			txn.Bank,
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.Currency,
			txn.Merchant,
			txn.AccountLast4,
			balance,
			txn.Reference,
			strconv.FormatBool(txn.IsFromCard),
		}
		if w.IncludeRaw {
			row = append(row, txn.RawBody)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
