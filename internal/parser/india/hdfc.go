package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// HDFC message shapes:
//
//	"Rs.500.00 debited from a/c **1234 on 01-01-25 to VPA swiggy@ybl (UPI Ref No 400123456789)"
//	"INR 2,500.00 debited from HDFC Bank A/c XX1234 on 01-JAN-25. Info: SWIGGY. Avl bal INR 4,500.00"
//	"Spent Rs.450.00 On HDFC Bank Card x7890 At AMAZON On 2025-01-01 Avl Limit: INR 50,000.00"
func NewHDFC() parser.Parser {
	cfg := baseConfig("HDFC Bank")
	cfg.Senders = parser.SenderMatch{
		Routes:   []string{"HDFCBK", "HDFCBN"},
		Contains: []string{"HDFCBANK"},
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)to\s+vpa\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)info\s*[:\-]?\s*([A-Za-z][A-Za-z0-9 .&'\-/*]{1,40}?)(?:\s+avl\b|[.,;]|$)`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+avl\b|[.,;]|$)`),
		parser.P(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+ref\b|[.,;]|$)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)upi\s*ref\s*(?:no\.?)?\s*[:#]?\s*(\d{9,14})`),
		parser.P(`(?i)ref(?:erence)?\s*(?:no\.?|#|:)?\s*([A-Za-z0-9]{6,20})`),
	}
	return parser.New(cfg)
}
