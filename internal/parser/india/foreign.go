package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// Foreign banks operating in India mix their global card phrasing with
// local UPI vocabulary, and their card postings can arrive in a foreign
// currency adjacent to the amount.

var cardForeignCurrencies = []string{"USD", "EUR", "GBP", "SGD", "AED", "THB", "LKR"}

func NewCiti() parser.Parser {
	cfg := baseConfig("Citibank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"CITIBK", "CITIIN"}, Contains: []string{"CITIBANK"}}
	cfg.ForeignCurrencies = cardForeignCurrencies
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+was\b|[.,;](?:\s|$)|$)`),
		parser.P(`(?i)towards\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:[.,;](?:\s|$)|$)`),
	}
	return parser.New(cfg)
}

func NewHSBCIndia() parser.Parser {
	cfg := baseConfig("HSBC India")
	cfg.Senders = parser.SenderMatch{Routes: []string{"HSBCBK", "HSBCIN"}}
	cfg.ForeignCurrencies = cardForeignCurrencies
	return parser.New(cfg)
}

func NewStandardChartered() parser.Parser {
	cfg := baseConfig("Standard Chartered")
	cfg.Senders = parser.SenderMatch{Routes: []string{"SCBANK", "SCBIND"}, Contains: []string{"STANCHART"}}
	cfg.ForeignCurrencies = cardForeignCurrencies
	return parser.New(cfg)
}
