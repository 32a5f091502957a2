// Package india holds the INR regional defaults and the Indian
// institution parsers. Indian banks share a regulation-driven vocabulary
// (UPI, NEFT/IMPS/RTGS, "A/c XXnnnn", e-mandate notices), so the shared
// heuristics live here and each bank overrides only what differs.
package india

import (
	"regexp"
	"strings"

	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

const currency = "INR"

// Investment activity is categorically different from spending even
// though money leaves the account, so these terms pre-empt the ordinary
// debit/credit table. Clearing corporations, brokerages, fund terms.
var investmentTerms = []string{
	"cdsl", "nsdl", "indian clearing corporation", "iccl",
	"nse clearing", "bse limited", "zerodha", "groww", "upstox",
	"angel one", "mutual fund", "sip purchase", "sip instalment",
	"ipo application", "ipo mandate", "demat", "folio", "nav of",
	"units allotted", "redemption proceeds",
}

// UPI/NEFT vocabulary drives the regional type table. "Credited to
// beneficiary" is an outgoing transfer reaching the other side, not
// income, so it is checked before the plain credit verbs.
var typeRules = []parser.TypeRule{
	{Keywords: []string{"credited to the beneficiary", "credited to beneficiary", "neft", "imps", "rtgs", "transferred to", "trf to", "fund transfer"}, Type: models.TypeTransfer},
	{Keywords: []string{"debited", "spent", "withdrawn", "purchase of", "deducted", "paid to", "sent to", "payment of", "charged"}, Type: models.TypeExpense},
	{Keywords: []string{"credited", "received", "deposited", "refund of", "reversal of"}, Type: models.TypeIncome},
}

var monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// mandate recognizes UPI AutoPay / e-NACH notices: creation of a mandate
// or a reminder that a deduction is coming. Neither is a transaction.
var mandate = &parser.MandateDetector{
	Terms: []string{
		"e-mandate", "e-nach", "upi-mandate", "upi autopay",
		"mandate has been created", "mandate created", "mandate registered",
		"will be debited", "will be deducted", "upcoming deduction",
	},
	AmountPats: []parser.Pattern{
		parser.P(`(?i)(?:INR|Rs\.?|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	},
	DatePats: []parser.Pattern{
		parser.P(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		parser.P(`(?i)(\d{1,2}[-\s](?:` + monthAlt + `)[a-z]*[-\s,]?\s?\d{2,4})`),
	},
	MerchantPats: []parser.Pattern{
		parser.P(`(?i)(?:towards|for|to)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+via\b|\s+umn\b|[.,;]|$)`),
	},
	UMNPat:     parser.P(`(?i)umn\s*[:#]?\s*([a-z0-9.@\-]+)`),
	DateFormat: "02/01/2006",
}

// Mandate exposes the regional mandate recognizer for callers that
// track subscriptions.
func Mandate() *parser.MandateDetector { return mandate }

// balanceRecognizer turns "Avl Bal" pings into balance observations.
var balanceRecognizer = &parser.BalanceRecognizer{
	Terms: []string{
		"avl bal", "avl. bal", "available balance", "a/c balance",
		"account balance", "balance in your", "avlbl bal", "bal in a/c",
	},
	BalancePats: []parser.Pattern{
		// "Avl Bal in A/c XX1234 is INR 4,500.00"
		parser.P(`(?i)bal(?:ance)?\s+in\s+(?:your\s+)?a\/c\s+[Xx*]*\d*\s+is\s+(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		// "Avl Bal is INR 4,500.00" / "Available balance: Rs 4500"
		parser.P(`(?i)(?:avl\.?|avlbl|available|a\/c|account)\s*bal(?:ance)?\s*(?:is|:|\-)?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	},
	DatePat: parser.P(`(?i)as\s+o[nf]\s+([0-9]{1,2}[-/][0-9]{1,2}[-/][0-9]{2,4})`),
}

// Balance exposes the regional balance-ping recognizer.
func Balance() *parser.BalanceRecognizer { return balanceRecognizer }

// Outgoing NEFT/IMPS confirmations reuse the word "credited" for money
// landing on the far side. When the destination bank named in the text
// is not the issuing bank, the message is our outgoing transfer. The
// rule is known-approximate for aggregator senders.
var destBankPat = regexp.MustCompile(`(?i)credited\s+to\s+(?:beneficiary\s+)?(?:a\/c|account)[^.,;]*?(?:with|at|of)\s+([A-Za-z][A-Za-z ]{1,28}?)(?:\s+bank\b|[.,;]|$)`)

func reclassifyOutgoingCredit(t *models.Transaction, text string) {
	if t.Type != models.TypeIncome {
		return
	}
	m := destBankPat.FindStringSubmatch(text)
	if m == nil {
		return
	}
	dest := strings.ToLower(strings.TrimSpace(m[1]))
	issuer := strings.ToLower(strings.TrimSuffix(t.Bank, " Bank"))
	if dest != "" && !strings.Contains(dest, issuer) && !strings.Contains(issuer, dest) {
		t.Type = models.TypeTransfer
	}
}

// baseConfig is the regional starting point every Indian parser
// customizes.
func baseConfig(bank string) parser.Config {
	return parser.Config{
		Bank:            bank,
		Currency:        currency,
		InvestmentTerms: investmentTerms,
		TypeRules:       typeRules,
		Mandate:         mandate,
		PostProcess:     reclassifyOutgoingCredit,
	}
}
