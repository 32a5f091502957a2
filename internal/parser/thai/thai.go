// Package thai holds the THB regional defaults and the Thai bank
// parsers. Thai banks mix Thai and English freely in one message, so
// every keyword table carries both scripts. String matching on the Thai
// terms is plain substring work; case folding only affects the Latin
// part.
package thai

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

const currency = "THB"

var txnKeywords = []string{
	// english
	"withdraw", "transfer", "deposit", "payment", "paid", "debited", "credited", "received",
	// thai: ถอน withdraw, โอน transfer, ชำระ pay, จ่าย pay,
	// เงินเข้า money in, เงินออก money out, หัก deduct, รับโอน incoming transfer
	"ถอน", "โอน", "ชำระ", "จ่าย", "เงินเข้า", "เงินออก", "หัก", "รับโอน",
}

var excludeTerms = []string{
	"otp", "รหัส otp", "รหัสผ่าน", "one time password", "verification code",
	"โปรโมชั่น", "promotion", "ดอกเบี้ยพิเศษ", "apply now", "สมัครเลย",
	"will be debited", "จะถูกหัก",
}

// รับโอน/เงินเข้า must be probed before the bare โอน, which they contain.
var typeRules = []parser.TypeRule{
	{Keywords: []string{"รับโอน", "เงินเข้า", "credited", "received", "deposit"}, Type: models.TypeIncome},
	{Keywords: []string{"โอนเงิน", "โอนไป", "transfer to", "โอนให้"}, Type: models.TypeTransfer},
	{Keywords: []string{"ถอน", "ชำระ", "จ่าย", "หัก", "เงินออก", "withdraw", "payment", "paid", "debited"}, Type: models.TypeExpense},
}

var amountPatterns = []parser.Pattern{
	parser.P(`([\d,]+(?:\.\d+)?)\s*(?:บาท|บ\.|THB)`),
	parser.P(`(?i)THB\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`(?i)(?:จำนวน|amount)\s*:?\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`\b([\d,]+\.\d{2})\b`),
}

var accountPatterns = []parser.Pattern{
	parser.P(`(?i)(?:บัญชี|a\/c|acct|account)\s*(?:no\.?)?\s*[:\-]?\s*([Xx*]*\d{3,6})`),
	parser.P(`[Xx]{1,2}(\d{4})\b`),
}

var balancePatterns = []parser.Pattern{
	parser.P(`(?:คงเหลือ|ยอดคงเหลือ|ยอดเงินคงเหลือ)\s*:?\s*([\d,]+(?:\.\d+)?)`),
	parser.P(`(?i)(?:outstanding|available)\s+balance\s*:?\s*([\d,]+(?:\.\d+)?)`),
}

var merchantPatterns = []parser.Pattern{
	parser.P(`(?:ไปยัง|ให้|ที่ร้าน|ร้าน)\s*:?\s*([A-Za-z0-9ก-๙ .&'\-\/]{2,40}?)(?:\s+(?:เมื่อ|วันที่)|[.,;]|$)`),
	parser.P(`(?i)(?:\bat|\bto)\s+([A-Za-z][A-Za-z0-9 .&'\-\/]{1,40}?)(?:\s+on\b|[.,;]|$)`),
}

var balanceRecognizer = &parser.BalanceRecognizer{
	Terms:       []string{"ยอดคงเหลือ", "ยอดเงินคงเหลือ", "available balance", "outstanding balance"},
	TxnKeywords: txnKeywords,
	BalancePats: balancePatterns,
	AccountPats: accountPatterns,
}

// Balance exposes the regional balance-ping recognizer.
func Balance() *parser.BalanceRecognizer { return balanceRecognizer }

func baseConfig(bank string) parser.Config {
	return parser.Config{
		Bank:             bank,
		Currency:         currency,
		TxnKeywords:      txnKeywords,
		ExcludeTerms:     excludeTerms,
		TypeRules:        typeRules,
		AmountPatterns:   amountPatterns,
		AccountPatterns:  accountPatterns,
		BalancePatterns:  balancePatterns,
		MerchantPatterns: merchantPatterns,
	}
}
