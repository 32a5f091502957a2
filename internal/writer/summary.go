package writer

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expensewise/sms-parser/internal/models"
)

// Summary aggregates a batch of records for the end-of-run report the
// CLI prints after writing the CSV.
type Summary struct {
	Total  int
	ByType map[models.TxnType]int
	// Money moved per currency. Expenses, card spends and transfers
	// count as outflow; income counts as inflow. Investments are
	// reported separately since they are neither gain nor loss.
	ByCurrency map[string]CurrencyTotal
}

// CurrencyTotal is the flow breakdown for one currency.
type CurrencyTotal struct {
	Outflow  decimal.Decimal
	Inflow   decimal.Decimal
	Invested decimal.Decimal
}

// Summarize folds a batch of records into totals.
func Summarize(txns []*models.Transaction) Summary {
	s := Summary{
		ByType:     make(map[models.TxnType]int),
		ByCurrency: make(map[string]CurrencyTotal),
	}
	for _, txn := range txns {
		s.Total++
		s.ByType[txn.Type]++

		ct := s.ByCurrency[txn.Currency]
		switch txn.Type {
		case models.TypeIncome:
			ct.Inflow = ct.Inflow.Add(txn.Amount)
		case models.TypeInvestment:
			ct.Invested = ct.Invested.Add(txn.Amount)
		default:
			ct.Outflow = ct.Outflow.Add(txn.Amount)
		}
		s.ByCurrency[txn.Currency] = ct
	}
	return s
}

// Print writes the report in the CLI's indented style. Currencies are
// sorted so runs over the same backup produce identical output.
func (s Summary) Print(out io.Writer) {
	fmt.Fprintf(out, "  Summary: %d transaction(s)\n", s.Total)
	for _, ty := range []models.TxnType{
		models.TypeExpense, models.TypeCredit, models.TypeIncome,
		models.TypeTransfer, models.TypeInvestment,
	} {
		if n := s.ByType[ty]; n > 0 {
			fmt.Fprintf(out, "    %-10s %d\n", ty, n)
		}
	}

	currencies := make([]string, 0, len(s.ByCurrency))
	for c := range s.ByCurrency {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	for _, c := range currencies {
		ct := s.ByCurrency[c]
		fmt.Fprintf(out, "    %s: out %s, in %s", c, ct.Outflow.StringFixed(2), ct.Inflow.StringFixed(2))
		if !ct.Invested.IsZero() {
			fmt.Fprintf(out, ", invested %s", ct.Invested.StringFixed(2))
		}
		fmt.Fprintln(out)
	}
}
