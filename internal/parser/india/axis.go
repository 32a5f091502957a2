package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// Axis packs the counterpart into a slash-delimited UPI trailer:
//
//	"INR 500.00 debited A/c no. XX1234 01-01-25 UPI/P2M/400123456789/SWIGGY Not you? SMS BLOCKUPI"
//	"Spent Card no. XX7890 INR 1,250.00 01-01-25 AMAZON RETAIL Avl Lmt INR 48,750.00"
func NewAxis() parser.Parser {
	cfg := baseConfig("Axis Bank")
	cfg.Senders = parser.SenderMatch{
		Routes:   []string{"AXISBK", "AXISB"},
		Contains: []string{"AXISBANK"},
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)upi\/p2[ma]\/\d+\/([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+not\b|\/|[.,;]|$)`),
		parser.P(`(?i)\d{2}-\d{2}-\d{2}\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)\s+avl\b`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)upi\/p2[ma]\/(\d{9,14})`),
		parser.P(`(?i)ref(?:erence)?\s*(?:no\.?|#|:)?\s*([A-Za-z0-9]{6,20})`),
	}
	cfg.LimitPatterns = []parser.Pattern{
		parser.P(`(?i)avl\s*lmt\s*(?:INR|Rs\.?|₹)?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)avl\s*limit\s*[:\-]?\s*(?:INR|Rs\.?|₹)?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.CreditCardHints = []string{"avl lmt", "avl limit", "credit card", "credit limit"}
	return parser.New(cfg)
}
