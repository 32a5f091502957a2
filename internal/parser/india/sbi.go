package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// SBI writes "trf to" for ordinary UPI spends, so the regional transfer
// rule would misfile them; the debit verbs are checked first here.
//
//	"Dear UPI user A/C X1234 debited by 500.0 on date 01Jan25 trf to SWIGGY Refno 400123456789. -SBI"
//	"Your A/C XXXXX1234 Credited INR 25,000.00 on 01/01/25 -Deposit by transfer. Avl Bal INR 40,000.00-SBI"
func NewSBI() parser.Parser {
	cfg := baseConfig("State Bank of India")
	cfg.Senders = parser.SenderMatch{
		Routes: []string{"SBIINB", "SBIUPI", "SBIPSG", "CBSSBI", "ATMSBI", "SBIOTP", "SBYONO"},
	}
	cfg.TypeRules = []parser.TypeRule{
		{Keywords: []string{"debited", "withdrawn", "w/d", "spent", "deducted"}, Type: models.TypeExpense},
		{Keywords: []string{"neft", "imps", "rtgs", "credited to the beneficiary"}, Type: models.TypeTransfer},
		{Keywords: []string{"credited", "deposit", "received"}, Type: models.TypeIncome},
	}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)trf\s+to\s+([A-Za-z][A-Za-z0-9@ .&'\-]{1,40}?)(?:\s+refno\b|\s+ref\b|[.,;]|$)`),
		parser.P(`(?i)transfer\s+from\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+ref\b|[.,;]|$)`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	cfg.AmountPatterns = []parser.Pattern{
		// "debited by 500.0" carries no currency marker at all
		parser.P(`(?i)(?:debited|credited)\s+(?:by|for)?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)(?:INR|Rs\.?|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)w\/d\s*(?:of)?\s*(?:INR|Rs\.?|₹)?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)refno\s*\.?\s*([A-Za-z0-9]{6,20})`),
		parser.P(`(?i)ref(?:erence)?\s*(?:no\.?|#|:)?\s*([A-Za-z0-9]{6,20})`),
	}
	return parser.New(cfg)
}
