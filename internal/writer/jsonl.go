package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/expensewise/sms-parser/internal/models"
)

// JSONLWriter writes one JSON record per line, a shape that pipes
// cleanly into jq and bulk loaders.
type JSONLWriter struct {
	IncludeRaw bool // keep the raw message body on each record
}

type jsonlRecord struct {
	ID string `json:"id"`
	*models.Transaction
}

// WriteToFile writes records to a JSONL file at the given path.
func (w *JSONLWriter) WriteToFile(path string, txns []*models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes records, one JSON object per line, to the given writer.
func (w *JSONLWriter) Write(out io.Writer, txns []*models.Transaction) error {
	enc := json.NewEncoder(out)
	for _, txn := range txns {
		t := *txn
		if !w.IncludeRaw {
			t.RawBody = ""
		}
		if err := enc.Encode(jsonlRecord{ID: txn.GenerateID(), Transaction: &t}); err != nil {
			return fmt.Errorf("failed to write JSONL record: %w", err)
		}
	}
	return nil
}
