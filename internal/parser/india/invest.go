package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// Brokerage and clearing-house senders. Everything transactional from
// these is an investment regardless of the debit/credit wording, so the
// type table collapses to a single rule.

func investConfig(bank string, match parser.SenderMatch) parser.Config {
	cfg := baseConfig(bank)
	cfg.Senders = match
	cfg.TypeRules = []parser.TypeRule{
		{Keywords: []string{"debited", "credited", "received", "transferred", "blocked", "allotted", "invested"}, Type: models.TypeInvestment},
	}
	return cfg
}

// NewZerodha handles funds movement alerts from Zerodha/ICCL:
//
//	"Rs.10,000.00 transferred to your Zerodha account via UPI. Funds will be available shortly."
func NewZerodha() parser.Parser {
	return parser.New(investConfig("Zerodha", parser.SenderMatch{
		Routes: []string{"ZRODHA", "ZERODH"}, Contains: []string{"ZERODHA"},
	}))
}

func NewGroww() parser.Parser {
	return parser.New(investConfig("Groww", parser.SenderMatch{
		Routes: []string{"GROWWI"}, Contains: []string{"GROWW"},
	}))
}

func NewUpstox() parser.Parser {
	return parser.New(investConfig("Upstox", parser.SenderMatch{
		Routes: []string{"UPSTOX"},
	}))
}

// NewClearing covers CDSL/NSDL demat alerts and ICCL settlement
// messages that arrive under the clearing house's own sender.
func NewClearing() parser.Parser {
	return parser.New(investConfig("Indian Clearing Corporation", parser.SenderMatch{
		Routes: []string{"CDSLIN", "NSDLIN", "ICCLIN"},
	}))
}
