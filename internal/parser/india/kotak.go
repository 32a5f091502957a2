package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// Kotak leads with a bare verb, so the regional "sent to"/"paid to"
// phrasing never appears and the type table is verb-only here:
//
//	"Sent Rs.500.00 from Kotak Bank AC X1234 to swiggy@ybl on 01-01-25. UPI Ref 400123456789"
//	"Received Rs.2,000.00 in your Kotak Bank AC X1234 from ramesh@okicici on 01-01-25"
func NewKotak() parser.Parser {
	cfg := baseConfig("Kotak Mahindra Bank")
	cfg.Senders = parser.SenderMatch{
		Routes:   []string{"KOTAKB", "KOTAKM"},
		Contains: []string{"KOTAK"},
	}
	cfg.TypeRules = []parser.TypeRule{
		{Keywords: []string{"neft", "imps", "rtgs", "fund transfer"}, Type: models.TypeTransfer},
		{Keywords: []string{"sent", "debited", "spent", "withdrawn", "paid", "deducted"}, Type: models.TypeExpense},
		{Keywords: []string{"received", "credited", "deposited", "refund"}, Type: models.TypeIncome},
	}
	cfg.AmountPatterns = []parser.Pattern{
		parser.P(`(?i)(?:sent|received|debited|credited)\s+(?:Rs\.?|INR|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)(?:Rs\.?|INR|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)(?:to|from)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)upi\s*ref\s*[:#]?\s*(\d{9,14})`),
	}
	cfg.AccountPatterns = []parser.Pattern{
		parser.P(`(?i)\bac\s+([Xx*]*\d{3,6})`),
		parser.P(`(?i)(?:a\/c|account)\s*(?:no\.?)?\s*([Xx*]*\d{3,6})`),
	}
	return parser.New(cfg)
}
