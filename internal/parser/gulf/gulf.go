// Package gulf holds the AED regional defaults and the UAE bank
// parsers. Card activity dominates here and postings routinely arrive
// in a foreign currency written next to the amount, which overrides the
// home currency for that record only.
package gulf

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

const currency = "AED"

var foreignCurrencies = []string{
	"USD", "EUR", "GBP", "SAR", "KWD", "QAR", "OMR", "BHD", "INR",
	"EGP", "JOD", "TRY", "THB", "SGD",
}

var typeRules = []parser.TypeRule{
	{Keywords: []string{"transferred to", "transfer to", "remittance"}, Type: models.TypeTransfer},
	{Keywords: []string{"purchase of", "was used for", "spent", "debited", "withdrawn", "payment of", "charged"}, Type: models.TypeExpense},
	{Keywords: []string{"credited", "salary", "received", "refund", "reversal"}, Type: models.TypeIncome},
}

var txnKeywords = []string{
	"purchase", "was used for", "debited", "credited", "withdrawn",
	"transferred", "payment of", "spent", "salary", "refund",
}

var amountPatterns = []parser.Pattern{
	// currency code always rides next to the amount: "AED 150.00", "USD 49.99"
	parser.P(`(?i)\b(?:AED|USD|EUR|GBP|SAR|KWD|QAR|OMR|BHD|INR|EGP|JOD|TRY|THB|SGD)\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`([\d,]+\.\d{2})\s*(?:AED|USD|EUR|GBP)`),
	parser.P(`\b([\d,]+\.\d{2})\b`),
}

var merchantPatterns = []parser.Pattern{
	parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-\/]{1,40}?)(?:\s*,\s*[A-Z]{2,}|\s+on\b|\s+avl\b|[.;](?:\s|$)|$)`),
	parser.P(`(?i)(?:to|towards)\s+([A-Za-z][A-Za-z0-9 .&'\-\/]{1,40}?)(?:\s+on\b|[.,;](?:\s|$)|$)`),
}

var accountPatterns = []parser.Pattern{
	parser.P(`(?i)card\s*(?:no\.?)?\s*(?:ending\s*(?:in|with)?\s*)?([Xx*]*\d{3,6})`),
	parser.P(`(?i)(?:a\/c|acc(?:oun)?t)\s*(?:no\.?)?\s*[:\-]?\s*([Xx*]*[A-Za-z]{0,2}\d{3,6})`),
}

var mandate = &parser.MandateDetector{
	Terms: []string{
		"standing instruction", "will be debited", "recurring payment",
		"direct debit mandate", "autopay",
	},
	AmountPats: []parser.Pattern{
		parser.P(`(?i)\bAED\s*([\d,]+(?:\.\d+)?)`),
	},
	DatePats: []parser.Pattern{
		parser.P(`(\d{1,2}\/\d{1,2}\/\d{2,4})`),
	},
	MerchantPats: []parser.Pattern{
		parser.P(`(?i)(?:for|towards|to)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	},
	DateFormat: "02/01/2006",
}

// Mandate exposes the regional mandate recognizer.
func Mandate() *parser.MandateDetector { return mandate }

var balanceRecognizer = &parser.BalanceRecognizer{
	Terms:       []string{"available balance", "avl bal", "account balance", "current balance"},
	TxnKeywords: txnKeywords,
	BalancePats: []parser.Pattern{
		// "Your account balance is AED 8,750.00"
		parser.P(`(?i)(?:available|avl\.?|account|current)\s*bal(?:ance)?[^0-9]*?([\d,]+(?:\.\d+)?)`),
	},
	AccountPats: accountPatterns,
	DatePat:     parser.P(`(?i)as\s+o[nf]\s+(\d{1,2}\/\d{1,2}\/\d{2,4})`),
}

// Balance exposes the regional balance-ping recognizer.
func Balance() *parser.BalanceRecognizer { return balanceRecognizer }

func baseConfig(bank string) parser.Config {
	return parser.Config{
		Bank:              bank,
		Currency:          currency,
		TxnKeywords:       txnKeywords,
		AmountPatterns:    amountPatterns,
		MerchantPatterns:  merchantPatterns,
		AccountPatterns:   accountPatterns,
		TypeRules:         typeRules,
		ForeignCurrencies: foreignCurrencies,
		Mandate:           mandate,
	}
}
