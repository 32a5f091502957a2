// Package persian holds the IRR regional defaults and the Iranian bank
// parsers. Messages are Persian-script, amounts often use extended
// Arabic-Indic digits, and the terse multi-line statement style
// ("برداشت: مبلغ / مانده: مبلغ") replaces full sentences. All text is
// digit-folded to ASCII before extraction.
package persian

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

const currency = "IRR"

var txnKeywords = []string{
	// برداشت withdrawal, واریز deposit, خرید purchase, انتقال transfer, کسر deduction
	"برداشت", "واریز", "خرید", "انتقال", "کسر",
}

var excludeTerms = []string{
	// رمز one-time password, اعتبارسنجی verification
	"رمز یکبار مصرف", "رمز پویا", "کد تایید", "اعتبارسنجی",
	"تبلیغ", "جشنواره", "قرعه کشی",
}

var typeRules = []parser.TypeRule{
	{Keywords: []string{"انتقال"}, Type: models.TypeTransfer},
	{Keywords: []string{"برداشت", "خرید", "کسر"}, Type: models.TypeExpense},
	{Keywords: []string{"واریز"}, Type: models.TypeIncome},
}

var amountPatterns = []parser.Pattern{
	// "برداشت: 500,000" / "واریز 1,250,000 ریال"
	parser.P(`(?:برداشت|واریز|خرید|انتقال|کسر)\s*:?\s*(?:مبلغ\s*)?([\d,]+)`),
	parser.P(`مبلغ\s*:?\s*([\d,]+)`),
	parser.P(`([\d,]+)\s*(?:ریال|ريال)`),
}

var balancePatterns = []parser.Pattern{
	// مانده remaining balance
	parser.P(`(?:مانده|موجودی)\s*:?\s*([\d,]+)`),
}

var accountPatterns = []parser.Pattern{
	parser.P(`(?:حساب|کارت|سپرده)\s*:?\s*[*.]*(\d{3,6})`),
}

var merchantPatterns = []parser.Pattern{
	// "خرید از فروشگاه X" - purchase from store X
	parser.P(`(?:خرید از|پرداخت به)\s*:?\s*([A-Za-zآ-ی0-9 ]{2,40}?)(?:\s+مبلغ|[.,;\n]|$)`),
}

var balanceRecognizer = &parser.BalanceRecognizer{
	Terms:       []string{"مانده", "موجودی"},
	TxnKeywords: txnKeywords,
	BalancePats: balancePatterns,
	AccountPats: accountPatterns,
}

// Balance exposes the regional balance-ping recognizer. Text should be
// digit-folded by the caller the same way the parsers do it.
func Balance() *parser.BalanceRecognizer { return balanceRecognizer }

func baseConfig(bank string) parser.Config {
	return parser.Config{
		Bank:             bank,
		Currency:         currency,
		TxnKeywords:      txnKeywords,
		ExcludeTerms:     excludeTerms,
		TypeRules:        typeRules,
		AmountPatterns:   amountPatterns,
		BalancePatterns:  balancePatterns,
		AccountPatterns:  accountPatterns,
		MerchantPatterns: merchantPatterns,
		Normalize:        parser.FoldDigits,
	}
}
