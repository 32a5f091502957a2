package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// Payments banks and neobank co-brands. The co-brands ride on partner
// banks (Jupiter and Fi on Federal) and must be registered ahead of
// their partner so their senders resolve to the right display name.

// NewPaytmBank handles both wallet and payments-bank traffic.
//
//	"Rs.120.00 paid to merchant@paytm from Paytm Wallet. Txn ID: 12345678901. Wallet Bal: Rs.880.00"
//	"Rs 500 received in your Paytm Payments Bank a/c XX4421 from ram@okhdfcbank."
func NewPaytmBank() parser.Parser {
	cfg := baseConfig("Paytm Payments Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"PYTMBK", "IPAYTM"}, Contains: []string{"PAYTMB"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)(?:to|at|from)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)(?:paid\s+to|sent\s+to|received\s+from)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+from\b|[.,;]|$)`),
	}
	cfg.BalancePatterns = []parser.Pattern{
		parser.P(`(?i)wallet\s+bal(?:ance)?\s*[:\-]?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)txn\s*id\s*[:#]?\s*(\d{8,16})`),
	}
	return parser.New(cfg)
}

// NewAirtelBank: Airtel Payments Bank leads with the amount and names
// the purpose after "for".
//
//	"Rs 249.00 debited from Airtel Payments Bank a/c for Airtel Prepaid Recharge on 01-01-25. Bal: Rs 751.00"
func NewAirtelBank() parser.Parser {
	cfg := baseConfig("Airtel Payments Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"AIRBNK", "ARTLBK"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)(?:to|at)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)\bfor\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

// NewJupiter: card spends read "You spent ... on MERCHANT using your
// Jupiter Debit Card". The "on" phrasing needs its own merchant rule;
// the generic "at/to" forms never appear.
//
//	"You spent Rs.349.00 on ZOMATO using Jupiter Debit Card XX3141. Avl Bal Rs.4,151.00"
func NewJupiter() parser.Parser {
	cfg := baseConfig("Jupiter")
	cfg.Senders = parser.SenderMatch{Routes: []string{"JUPITR"}, Contains: []string{"JUPITER"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)(?:to|at)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)spent\s+(?:INR|Rs\.?|₹)\s*\.?\s*[\d,.]+\s+on\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+using\b|\s+on\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

// NewFi follows the Jupiter phrasing with "added to"/"sent from" verbs.
//
//	"Rs.1,000.00 added to your Fi account from alice@okaxis. Balance: Rs.5,000.00"
func NewFi() parser.Parser {
	cfg := baseConfig("Fi Money")
	cfg.Senders = parser.SenderMatch{Routes: []string{"FIMNYI", "FIMONY"}}
	cfg.TxnKeywords = append(regionKeywords(), "added to", "sent from")
	cfg.TypeRules = append([]parser.TypeRule{
		{Keywords: []string{"added to"}, Type: models.TypeIncome},
		{Keywords: []string{"sent from"}, Type: models.TypeExpense},
	}, typeRules...)
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)(?:to|at|from)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)(?:paid\s+to|sent\s+to)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}
