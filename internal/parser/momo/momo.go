// Package momo holds the mobile-money provider parsers. Wallets have no
// masked account numbers, so records carry the fixed sentinel instead,
// and the fee quoted at the end of most receipts must never shadow the
// principal amount, so the amount cascade anchors on the verb.
package momo

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

var txnKeywords = []string{
	"sent to", "received", "paid to", "withdrawn", "you have paid",
	"payment made", "bought", "umetuma", "umepokea",
}

var excludeTerms = []string{
	"otp is", " otp ", "your otp", "one time password", "verification code",
	"your pin", "pin:", "do not share",
	"offer", "bonus", "promotion", "win ", "congratulations",
	"has requested", "payment request",
}

var typeRules = []parser.TypeRule{
	{Keywords: []string{"sent to", "paid to", "you have paid", "payment made", "withdrawn", "bought", "umetuma"}, Type: models.TypeExpense},
	{Keywords: []string{"received", "umepokea"}, Type: models.TypeIncome},
}

// currencyMarkers is every wallet-currency spelling the amount anchors
// accept; the per-provider home currency still decides the record.
const currencyMarkers = `(?:Ksh\.?|KES|Tsh\.?|TZS|GHS|UGX|Tk\.?|BDT|Rs\.?|PKR)`

var amountPatterns = []parser.Pattern{
	// amount then verb: "Ksh500.00 sent to JOHN"
	parser.P(`(?i)` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)\s+(?:sent|paid|received|withdrawn)`),
	// verb then amount: "received Tk 500.00 from"
	parser.P(`(?i)(?:sent|paid|received|withdrawn|umetuma|umepokea)\s+` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)`),
	// "payment made for GHS 50.00"
	parser.P(`(?i)(?:for|of)\s+` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`(?i)` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)`),
}

var balancePatterns = []parser.Pattern{
	parser.P(`(?i)(?:new\s+)?(?:m-pesa\s+)?balance\s*(?:is|:)?\s*` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`(?i)salio\s*(?:jipya)?\s*(?:ni|:)?\s*` + currencyMarkers + `\s*([\d,]+(?:\.\d+)?)`),
}

var merchantPatterns = []parser.Pattern{
	// agent and till receipts first, so the agent number and till
	// suffix stay out of the counterpart name
	parser.P(`(?i)from\s+agent\s+\d+\s*-?\s*([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	parser.P(`(?i)paid\s+to\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)\s+till\s*(?:number)?\s*\d+`),
	parser.P(`(?i)(?:sent\s+to|paid\s+to|received\s+from|from)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+\d{7,}|\s+on\b|\s+for\b|[.,;]|$)`),
	parser.P(`(?i)(?:kwa|kutoka)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+\d{7,}|[.,;]|$)`),
}

var referencePatterns = []parser.Pattern{
	// M-PESA receipts lead with the confirmation code
	parser.P(`^([A-Z0-9]{10})\s+(?i:confirmed)`),
	parser.P(`(?i)(?:trxid|trx\s*id|tid|txid|transaction\s*id|reference)\s*:?\s*([A-Za-z0-9]{6,20})`),
}

func momoConfig(provider, homeCurrency string, match parser.SenderMatch) parser.Config {
	return parser.Config{
		Bank:              provider,
		Currency:          homeCurrency,
		Senders:           match,
		TxnKeywords:       txnKeywords,
		ExcludeTerms:      excludeTerms,
		TypeRules:         typeRules,
		AmountPatterns:    amountPatterns,
		BalancePatterns:   balancePatterns,
		MerchantPatterns:  merchantPatterns,
		ReferencePatterns: referencePatterns,
		SentinelAccount:   models.MomoAccountSentinel,
		CardHints:         []string{},
	}
}
