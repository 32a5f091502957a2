package gulf

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// NewEmiratesNBD:
//
//	"Purchase of AED 150.00 with Debit Card ending 1234 at CARREFOUR, DUBAI. Avl Bal AED 12,345.67"
//	"Purchase of USD 49.99 with Credit Card ending 7890 at NETFLIX.COM. Avl Limit AED 19,500.00"
func NewEmiratesNBD() parser.Parser {
	cfg := baseConfig("Emirates NBD")
	cfg.Senders = parser.SenderMatch{Exact: []string{"EmiratesNBD", "ENBD"}, Contains: []string{"EMIRATESNBD"}}
	return parser.New(cfg)
}

// NewADCB:
//
//	"Your ADCB Credit Card XXX1234 was used for AED 250.00 at AMAZON.AE on 01/01/2025. Available limit AED 20,000.00"
func NewADCB() parser.Parser {
	cfg := baseConfig("ADCB")
	cfg.Senders = parser.SenderMatch{Exact: []string{"ADCB", "ADCBAlert"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)was\s+used\s+for\s+[A-Z]{3}\s*[\d,.]+\s+at\s+([A-Za-z][A-Za-z0-9 .&'\-\/]{1,40}?)(?:\s+on\b|[.,;](?:\s|$)|$)`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-\/]{1,40}?)(?:\s+on\b|[.,;](?:\s|$)|$)`),
	}
	return parser.New(cfg)
}

func NewFAB() parser.Parser {
	cfg := baseConfig("First Abu Dhabi Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"FAB", "FABBANK"}}
	return parser.New(cfg)
}

func NewMashreq() parser.Parser {
	cfg := baseConfig("Mashreq")
	cfg.Senders = parser.SenderMatch{Exact: []string{"Mashreq", "MASHREQ"}, Contains: []string{"MASHREQ"}}
	return parser.New(cfg)
}

// NewDIB: Islamic bank, no credit cards; "covered card" spends are
// still card activity but never CREDIT-typed like a revolving card.
func NewDIB() parser.Parser {
	cfg := baseConfig("Dubai Islamic Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"DIB", "DIBALERT"}}
	cfg.CreditCardHints = []string{}
	cfg.PostProcess = func(t *models.Transaction, text string) {
		if t.Type == models.TypeCredit {
			t.Type = models.TypeExpense
		}
	}
	return parser.New(cfg)
}

func NewRAKBank() parser.Parser {
	cfg := baseConfig("RAKBANK")
	cfg.Senders = parser.SenderMatch{Exact: []string{"RAKBANK"}, Contains: []string{"RAKBANK"}}
	return parser.New(cfg)
}

func NewCBD() parser.Parser {
	cfg := baseConfig("Commercial Bank of Dubai")
	cfg.Senders = parser.SenderMatch{Exact: []string{"CBD", "CBDALERT"}}
	return parser.New(cfg)
}

func NewEmiratesIslamic() parser.Parser {
	cfg := baseConfig("Emirates Islamic")
	cfg.Senders = parser.SenderMatch{Exact: []string{"EIB", "EmiratesIsl"}, Contains: []string{"EMIRATESISL"}}
	return parser.New(cfg)
}

// All returns the Gulf parsers in resolution order. Emirates Islamic is
// probed before Emirates NBD because both substring-match "EMIRATES"
// senders in the wild.
func All() []parser.Parser {
	return []parser.Parser{
		NewEmiratesIslamic(),
		NewEmiratesNBD(),
		NewADCB(),
		NewFAB(),
		NewMashreq(),
		NewDIB(),
		NewRAKBank(),
		NewCBD(),
	}
}
