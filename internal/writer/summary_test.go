package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/expensewise/sms-parser/internal/models"
)

func TestSummarize(t *testing.T) {
	txns := append(sampleTxns(), &models.Transaction{
		Amount:   decimal.RequireFromString("25000"),
		Type:     models.TypeIncome,
		Currency: "INR",
		Bank:     "HDFC Bank",
	}, &models.Transaction{
		Amount:   decimal.RequireFromString("5000"),
		Type:     models.TypeInvestment,
		Currency: "INR",
		Bank:     "Groww",
	})

	s := Summarize(txns)

	if s.Total != 4 {
		t.Errorf("total = %d, want 4", s.Total)
	}
	if s.ByType[models.TypeExpense] != 1 || s.ByType[models.TypeCredit] != 1 {
		t.Errorf("type counts = %v", s.ByType)
	}

	inr := s.ByCurrency["INR"]
	if !inr.Outflow.Equal(decimal.RequireFromString("500")) {
		t.Errorf("INR outflow = %s, want 500", inr.Outflow)
	}
	if !inr.Inflow.Equal(decimal.RequireFromString("25000")) {
		t.Errorf("INR inflow = %s, want 25000", inr.Inflow)
	}
	if !inr.Invested.Equal(decimal.RequireFromString("5000")) {
		t.Errorf("INR invested = %s, want 5000", inr.Invested)
	}

	// Card spends count as outflow in their posting currency.
	usd := s.ByCurrency["USD"]
	if !usd.Outflow.Equal(decimal.RequireFromString("49.99")) {
		t.Errorf("USD outflow = %s, want 49.99", usd.Outflow)
	}
	if !usd.Inflow.IsZero() {
		t.Errorf("USD inflow = %s, want 0", usd.Inflow)
	}
}

func TestSummaryPrintIsSorted(t *testing.T) {
	s := Summarize(sampleTxns())

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()

	if !strings.Contains(out, "Summary: 2 transaction(s)") {
		t.Errorf("missing header:\n%s", out)
	}
	// INR sorts before USD regardless of record order.
	inr := strings.Index(out, "INR:")
	usd := strings.Index(out, "USD:")
	if inr < 0 || usd < 0 || inr > usd {
		t.Errorf("currency lines out of order:\n%s", out)
	}
	if !strings.Contains(out, "USD: out 49.99, in 0.00") {
		t.Errorf("unexpected USD line:\n%s", out)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || len(s.ByCurrency) != 0 {
		t.Errorf("empty batch produced %+v", s)
	}
}
