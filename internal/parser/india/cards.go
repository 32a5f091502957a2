package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// Card issuers: everything is card activity, exclusions must swallow
// bill-payment confirmations ("payment received towards your credit
// card" settles an old expense, it is not a new one), and the record is
// forced onto the card path with the available limit attached.

func cardConfig(bank string, match parser.SenderMatch) parser.Config {
	cfg := baseConfig(bank)
	cfg.Senders = match
	cfg.ExcludeTerms = append([]string{
		"payment received towards your credit card",
		"payment of rs", "bill for your", "total amt due", "min amt due",
		"statement is ready", "has been generated",
	}, cfg.ExcludeTerms...)
	cfg.PostProcess = func(t *models.Transaction, text string) {
		t.IsFromCard = true
		if t.Type == models.TypeExpense {
			t.Type = models.TypeCredit
		}
		reclassifyOutgoingCredit(t, text)
	}
	return cfg
}

// NewAmex handles American Express India:
//
//	"Alert: You've spent INR 1,500.00 on your AMEX card ** 71005 at AMAZON on 1 January 2025"
func NewAmex() parser.Parser {
	cfg := cardConfig("American Express", parser.SenderMatch{
		Routes: []string{"AMEXIN"}, Contains: []string{"AMEX"},
	})
	cfg.AccountPatterns = []parser.Pattern{
		parser.P(`(?i)card\s*(?:no\.?)?\s*\*{0,2}\s*(\d{4,6})`),
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

// NewSBICard handles SBI Card. Its routes start with "SBICRD"; it is
// registered before State Bank of India so the card traffic never falls
// through to the bank parser.
func NewSBICard() parser.Parser {
	cfg := cardConfig("SBI Card", parser.SenderMatch{
		Routes: []string{"SBICRD", "SBICARD"},
	})
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+avl\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

func NewOneCard() parser.Parser {
	cfg := cardConfig("OneCard", parser.SenderMatch{
		Routes: []string{"ONECRD"}, Contains: []string{"ONECARD"},
	})
	return parser.New(cfg)
}

func NewSlice() parser.Parser {
	cfg := cardConfig("Slice", parser.SenderMatch{
		Routes: []string{"SLICEI", "SLICEC"},
	})
	return parser.New(cfg)
}
