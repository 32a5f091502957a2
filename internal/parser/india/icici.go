package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// ICICI puts the counterpart before the word "credited":
//
//	"ICICI Bank Acct XX123 debited for Rs 500.00 on 01-Jan-25; SWIGGY credited. UPI:400123456789"
//	"INR 1,200.00 spent on ICICI Bank Card XX7890 on 01-Jan-25 at AMAZON. Avl Limit: INR 48,800.00"
//
// Both debit and credit verbs appear in the same UPI message; the
// expense rule outranks income so the record stays an expense.
func NewICICI() parser.Parser {
	cfg := baseConfig("ICICI Bank")
	cfg.Senders = parser.SenderMatch{
		Routes:   []string{"ICICIB", "ICICIT"},
		Contains: []string{"ICICIBANK"},
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i);\s*([A-Za-z][A-Za-z0-9@ .&'\-]{1,40}?)\s+credited`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+avl\b|[.,;]|$)`),
		parser.P(`(?i)\bfrom\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)upi\s*[:#]\s*(\d{9,14})`),
		parser.P(`(?i)ref(?:erence)?\s*(?:no\.?|#|:)?\s*([A-Za-z0-9]{6,20})`),
	}
	cfg.AccountPatterns = []parser.Pattern{
		parser.P(`(?i)acct\s+([Xx*]*\d{3,6})`),
		parser.P(`(?i)card\s+([Xx*]*\d{3,6})`),
		parser.P(`(?i)(?:a\/c|account)\s*(?:no\.?)?\s*[:\-]?\s*([Xx*]*\d{3,6})`),
	}
	return parser.New(cfg)
}
