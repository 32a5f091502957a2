package thai

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// NewKBank: Kasikornbank.
//
//	"ถอน/โอน 500.00 บาท จากบัญชี X1234 คงเหลือ 4,500.00 บาท"
//	"Withdraw 500.00THB from a/c X1234 outstanding balance 4,500.00THB"
func NewKBank() parser.Parser {
	cfg := baseConfig("Kasikornbank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"KBank", "KBANK", "KBank Live"}}
	return parser.New(cfg)
}

// NewSCB: Siam Commercial Bank.
//
//	"ชำระเงิน 250.00 บาท ไปยัง 7-ELEVEN เมื่อ 01/01/25 คงเหลือ 1,750.00 บาท"
func NewSCB() parser.Parser {
	cfg := baseConfig("Siam Commercial Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"SCB", "SCBEasy"}, Contains: []string{"SCB EASY"}}
	cfg.MerchantPatterns = append([]parser.Pattern{
		parser.P(`ไปยัง\s*([A-Za-z0-9ก-๙ .&'\-\/]{2,40}?)(?:\s+เมื่อ|[.,;]|$)`),
	}, merchantPatterns...)
	return parser.New(cfg)
}

func NewBangkokBank() parser.Parser {
	cfg := baseConfig("Bangkok Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"BBL", "BangkokBank"}, Contains: []string{"BANGKOK BANK"}}
	return parser.New(cfg)
}

func NewKrungsri() parser.Parser {
	cfg := baseConfig("Krungsri")
	cfg.Senders = parser.SenderMatch{Exact: []string{"KRUNGSRI", "BAY"}, Contains: []string{"KRUNGSRI"}}
	return parser.New(cfg)
}

// NewKrungthai is registered before Krungsri look-alikes would be a
// problem the other way around: "KTB" is exact-only to avoid swallowing
// "KTC" card senders.
func NewKrungthai() parser.Parser {
	cfg := baseConfig("Krungthai Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"KTB", "Krungthai"}}
	return parser.New(cfg)
}

func NewTTB() parser.Parser {
	cfg := baseConfig("TMBThanachart Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"ttb", "TTB"}}
	return parser.New(cfg)
}

// NewKTC: Krungthai Card, the card arm spun out of KTB. Statements are
// English-first and verb on "charged", which the regional vocabulary
// does not carry.
//
//	"KTC Card X5678 charged THB 1,250.00 at LAZADA on 01/01/25. Avl credit limit 48,750.00"
func NewKTC() parser.Parser {
	cfg := baseConfig("KTC")
	cfg.Senders = parser.SenderMatch{Exact: []string{"KTC", "KTC Card"}, Contains: []string{"KTC CARD"}}
	cfg.TxnKeywords = append([]string{"charged"}, txnKeywords...)
	cfg.TypeRules = append([]parser.TypeRule{
		{Keywords: []string{"charged"}, Type: models.TypeExpense},
	}, typeRules...)
	cfg.CardHints = []string{"ktc card", "card x", "บัตรเครดิต"}
	cfg.CreditCardHints = []string{"ktc card", "avl credit", "credit limit", "บัตรเครดิต"}
	return parser.New(cfg)
}

func NewGSB() parser.Parser {
	cfg := baseConfig("Government Savings Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"GSB", "GSB Bank"}}
	return parser.New(cfg)
}

// All returns the Thai parsers in resolution order.
func All() []parser.Parser {
	return []parser.Parser{
		NewKTC(),
		NewKBank(),
		NewSCB(),
		NewBangkokBank(),
		NewKrungthai(),
		NewKrungsri(),
		NewTTB(),
		NewGSB(),
	}
}
