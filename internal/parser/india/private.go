package india

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
)

// NewIDFCFirst: IDFC FIRST writes the balance as "New Bal":
//
//	"Your A/C XXXXX1234 has been debited by INR 500.00 on 01-Jan-25 towards UPI/merchant@ybl. New Bal: INR 4,500.00"
func NewIDFCFirst() parser.Parser {
	cfg := baseConfig("IDFC FIRST Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"IDFCFB", "IDFCBK"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)upi\/([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)(?:to|at)\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)(?:towards|to|at)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+using\b|[.,;]|$)`),
	}
	cfg.BalancePatterns = []parser.Pattern{
		parser.P(`(?i)new\s+bal(?:ance)?\s*[:\-]?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)avl\s*bal(?:ance)?\s*(?:is|:)?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}
	return parser.New(cfg)
}

// NewYes:
//
//	"INR 500.00 debited from A/c XX1234 to VPA merchant@ybl on 01-01-25. UPI Ref 400123456789 -YES BANK"
func NewYes() parser.Parser {
	cfg := baseConfig("YES Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"YESBNK", "YESBK"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)to\s+vpa\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+ref\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

// NewIndusInd: the counterpart appears after "and a/c", a cousin of the
// ICICI semicolon form:
//
//	"A/c *1234 debited for Rs 500.00 on 01-Jan-25 and a/c merchant@okicici credited. IMPS Ref 123456789012"
func NewIndusInd() parser.Parser {
	cfg := baseConfig("IndusInd Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"INDUSB", "INDUSI"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)and\s+a\/c\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)\s+credited`),
		parser.P(`(?i)and\s+a\/c\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)\s+credited`),
		parser.P(`(?i)\bat\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
	}
	cfg.ReferencePatterns = []parser.Pattern{
		parser.P(`(?i)(?:imps|upi|neft)\s*ref\s*(?:no\.?)?\s*[:#]?\s*(\d{9,16})`),
		parser.P(`(?i)ref(?:erence)?\s*(?:no\.?|#|:)?\s*([A-Za-z0-9]{6,20})`),
	}
	return parser.New(cfg)
}

// NewFederal also fronts fintech co-brands (Jupiter, Fi); the co-brand
// senders are registered ahead of this parser so they claim their own
// traffic first.
//
//	"Rs 500.00 debited from your A/c to VPA merchant@ybl. Ref 400123456789. Avl Bal Rs 4,500.00 -Federal Bank"
func NewFederal() parser.Parser {
	cfg := baseConfig("Federal Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"FEDBNK", "FEDBKS"}}
	cfg.MerchantPatterns = []parser.Pattern{
		parser.P(`(?i)to\s+vpa\s+([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		parser.P(`(?i)\bto\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|\s+ref\b|[.,;]|$)`),
	}
	return parser.New(cfg)
}

// NewRBL issues more cards than accounts; the card phrasing leads.
//
//	"Transaction of INR 1,500.00 done on RBL Bank Credit Card XX7890 at AMAZON on 01-01-25. Avl Limit INR 48,500.00"
func NewRBL() parser.Parser {
	cfg := baseConfig("RBL Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"RBLBNK", "RBLCRD"}}
	cfg.TxnKeywords = append([]string{"transaction of"}, regionKeywords()...)
	cfg.AmountPatterns = []parser.Pattern{
		parser.P(`(?i)transaction\s+of\s+(?:INR|Rs\.?|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)(?:debited|credited|spent)\s+(?:by|for|with)?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		parser.P(`(?i)(?:INR|Rs\.?|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}
	cfg.TypeRules = append([]parser.TypeRule{
		{Keywords: []string{"transaction of", "done on"}, Type: models.TypeExpense},
	}, typeRules...)
	cfg.CreditCardHints = []string{"credit card", "card no", "avl limit", "available limit", "credit limit"}
	return parser.New(cfg)
}

func NewSouthIndian() parser.Parser {
	cfg := baseConfig("South Indian Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"SIBSMS", "SIBLTD"}}
	return parser.New(cfg)
}

func NewKarnataka() parser.Parser {
	cfg := baseConfig("Karnataka Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"KBLBNK", "KTKBNK"}}
	return parser.New(cfg)
}

func NewKarurVysya() parser.Parser {
	cfg := baseConfig("Karur Vysya Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"KVBANK", "KVBUPI"}}
	return parser.New(cfg)
}

func NewBandhan() parser.Parser {
	cfg := baseConfig("Bandhan Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"BDNBNK", "BANDHN"}}
	return parser.New(cfg)
}

func NewAUSmallFinance() parser.Parser {
	cfg := baseConfig("AU Small Finance Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"AUBANK", "AUSFB"}}
	return parser.New(cfg)
}

func NewEquitas() parser.Parser {
	cfg := baseConfig("Equitas Small Finance Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"EQUTAS", "ESFBL"}}
	return parser.New(cfg)
}

func NewUjjivan() parser.Parser {
	cfg := baseConfig("Ujjivan Small Finance Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"UJJSFB", "UJIVAN"}}
	return parser.New(cfg)
}

func NewJana() parser.Parser {
	cfg := baseConfig("Jana Small Finance Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"JANABK", "JANASF"}}
	return parser.New(cfg)
}

func NewDBS() parser.Parser {
	cfg := baseConfig("DBS Bank")
	cfg.Senders = parser.SenderMatch{Routes: []string{"DBSBNK", "DBSIND"}}
	return parser.New(cfg)
}

// regionKeywords returns a copy of the shared gate vocabulary so a
// parser can prepend its own terms without mutating the shared slice.
func regionKeywords() []string {
	return []string{
		"debited", "credited", "spent", "withdrawn", "sent", "received",
		"paid", "purchase", "payment of", "deducted", "transferred",
	}
}
