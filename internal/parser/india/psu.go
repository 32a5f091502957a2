package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// The public-sector banks share near-identical CBS phrasing
// ("A/c XX1234 Debited for Rs:500.00 on 01-01-2025 ... Avl Bal Rs:4500.00"),
// so they only differ by name and sender routes.

func psuConfig(bank string, routes ...string) parser.Config {
	cfg := baseConfig(bank)
	cfg.Senders = parser.SenderMatch{Routes: routes}
	cfg.AmountPatterns = []parser.Pattern{
		parser.P(`(?i)(?:debited|credited)\s+(?:for|by|with)?\s*(?:Rs|INR|₹)\s*[:.]?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)(?:Rs|INR|₹)\s*[:.]?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.BalancePatterns = []parser.Pattern{
		parser.P(`(?i)(?:avl|avail|clear)\s*bal(?:ance)?\s*(?:is)?\s*(?:Rs|INR|₹)?\s*[:.]?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)\bbal\s*(?:Rs|INR|₹)\s*[:.]?\s*([\d,]+(?:\.\d+)?)`),
	}
	return cfg
}

func NewPNB() parser.Parser {
	return parser.New(psuConfig("Punjab National Bank", "PNBSMS", "PNBINB"))
}

func NewBankOfBaroda() parser.Parser {
	return parser.New(psuConfig("Bank of Baroda", "BOBTXN", "BOBSMS", "BOBIBN"))
}

func NewCanara() parser.Parser {
	return parser.New(psuConfig("Canara Bank", "CANBNK", "CANARA"))
}

func NewUnion() parser.Parser {
	return parser.New(psuConfig("Union Bank of India", "UNIONB", "UBOI"))
}

func NewIDBI() parser.Parser {
	return parser.New(psuConfig("IDBI Bank", "IDBIBK", "IDBI"))
}

func NewUCO() parser.Parser {
	return parser.New(psuConfig("UCO Bank", "UCOBNK"))
}

func NewCentralBank() parser.Parser {
	return parser.New(psuConfig("Central Bank of India", "CENTBK", "CBI"))
}

func NewIndianBank() parser.Parser {
	return parser.New(psuConfig("Indian Bank", "INDBNK", "IndianBk"))
}

func NewBankOfIndia() parser.Parser {
	return parser.New(psuConfig("Bank of India", "BOIIND", "BOISMS"))
}

func NewBankOfMaharashtra() parser.Parser {
	return parser.New(psuConfig("Bank of Maharashtra", "MAHABK", "MAHAGB"))
}

func NewPunjabSind() parser.Parser {
	return parser.New(psuConfig("Punjab & Sind Bank", "PSBANK", "PSBIND"))
}

// NewIndiaPost: India Post Payments Bank rides the same CBS template as
// the PSU banks despite being a payments bank.
func NewIndiaPost() parser.Parser {
	return parser.New(psuConfig("India Post Payments Bank", "IPPBNK", "IPPBOL"))
}
