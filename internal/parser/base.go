package parser

import (
	"regexp"
	"strings"

	"github.com/expensewise/sms-parser/internal/models"
	"github.com/shopspring/decimal"
)

// Config declares everything institution-specific about a parser:
// sender matching, the keyword gate, and one ordered pattern cascade per
// extracted field. Regional packages supply locale defaults; a concrete
// parser overrides only the fields where its institution differs.
// Empty cascades fall back to the contract defaults below.
type Config struct {
	Bank     string
	Currency string
	Senders  SenderMatch

	// Gate. TxnKeywords must match (any); ExcludeTerms veto first.
	TxnKeywords  []string
	ExcludeTerms []string

	// Extraction cascades, most specific pattern first.
	AmountPatterns    []Pattern
	MerchantPatterns  []Pattern
	AccountPatterns   []Pattern
	BalancePatterns   []Pattern
	ReferencePatterns []Pattern
	LimitPatterns     []Pattern

	// Transfer endpoints, filled only on TRANSFER records.
	FromAccountPatterns []Pattern
	ToAccountPatterns   []Pattern

	// Type resolution. InvestmentTerms short-circuit the rule table.
	TypeRules       []TypeRule
	InvestmentTerms []string

	// Card detection. CardHints drive IsFromCard; CreditCardHints
	// additionally promote a debit-verb message to CREDIT.
	CardHints       []string
	CreditCardHints []string

	// Multi-currency postings: codes that may override the home
	// currency when found adjacent to the amount.
	ForeignCurrencies []string

	// SentinelAccount substitutes for a masked account number on
	// providers that have none (mobile-money wallets).
	SentinelAccount string

	// Normalize runs over the text before any extraction (e.g. Persian
	// digit folding). Optional.
	Normalize func(string) string

	// PostProcess mutates the assembled record as a final step
	// (e.g. card networks forcing IsFromCard). Optional.
	PostProcess func(t *models.Transaction, text string)

	// Mandate recognizes institution/region mandate notices beyond the
	// generic exclusion terms. Optional.
	Mandate *MandateDetector
}

// Contract-level defaults, used whenever a Config leaves a field empty.
var (
	defaultTxnKeywords = []string{
		"debited", "credited", "spent", "withdrawn", "sent", "received",
		"paid", "purchase", "payment of", "deducted", "transferred", "txn",
	}

	defaultExcludeTerms = []string{
		// "otp" alone would also hit merchants like HOTPOT
		"otp is", "otp:", " otp ", "your otp", "use otp",
		"one time password", "one-time password", "verification code",
		"has requested", "is requesting", "collect request",
		"will be debited", "will be deducted", "is due", "due on",
		"e-mandate", "mandate created", "autopay", "standing instruction",
		"offer", "cashback of", "win ", "apply now", "congratulations",
		"get up to", "% off", "emi offer", "pre-approved",
		"payment received towards your credit card",
	}

	defaultAmountPatterns = []Pattern{
		// amount before the verb: "INR 500.00 debited"
		P(`(?i)(?:INR|Rs\.?|₹|MVR|NPR|LKR)\s*\.?\s*([\d,]+(?:\.\d+)?)\s+(?:has been\s+|was\s+|is\s+)?(?:debited|credited|withdrawn|deducted|transferred|sent|paid)`),
		// verb before the amount: "debited by Rs.500"
		P(`(?i)(?:debited|credited|spent|withdrawn|sent|received|paid|deducted|charged)\s+(?:by|for|with|of|from)?\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		// currency marker adjacent: "Rs. 1,234.50" / "₹4,500"
		P(`(?i)(?:INR|Rs\.?|₹|USD|AED|SAR|THB|฿|KES|TZS|GHS|UGX|BDT|PKR|IRR|Ksh\.?|Tk\.?)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		// amount before a currency word: "1,500.00 THB" / "500 บาท"
		P(`([\d,]+(?:\.\d+)?)\s*(?:THB|AED|USD|INR|KES|บาท|ریال)`),
		// bare formatted amount, last resort
		P(`\b([\d,]+\.\d{2})\b`),
	}

	defaultMerchantPatterns = []Pattern{
		// UPI VPA handles
		P(`(?i)(?:to|from|at)\s+(?:vpa\s+)?([a-z][a-z0-9._\-]*@[a-z][a-z0-9]+)`),
		// "at MERCHANT on", "to MERCHANT.", "towards MERCHANT,"; a dot
		// only terminates before whitespace so AMAZON.AE stays whole
		P(`(?i)(?:\bat|towards|\bto)\s+([A-Za-z][A-Za-z0-9@ .&'\-*]{1,40}?)(?:\s+on\b|\s+via\b|\s+ref\b|\s+avl\b|\s+from\b|\s+using\b|[.,;](?:\s|$)|$)`),
		// "Info: MERCHANT" trailers
		P(`(?i)info\s*[:\-]\s*([A-Za-z][A-Za-z0-9 .&'\-/*]{1,40}?)(?:[.,;]|$)`),
	}

	defaultAccountPatterns = []Pattern{
		P(`(?i)\b(?:a\/c|acct|account|acc)\s*(?:no\.?)?\s*[:\-]?\s*(?:ending\s*)?([Xx*]*[A-Za-z]{0,2}\d{3,6})`),
		P(`(?i)card\s*(?:no\.?)?\s*(?:ending\s*(?:in\s*)?|[:\-]?\s*)([Xx*]*\d{3,6})`),
	}

	defaultBalancePatterns = []Pattern{
		P(`(?i)(?:avl|avbl|available|avail|a\/c)\s*bal(?:ance)?\s*(?:is|:|\-)?\s*(?:INR|Rs\.?|₹|AED|THB|KES|Ksh\.?)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		P(`(?i)\bbal(?:ance)?\s*(?:is|:|\-)\s*(?:INR|Rs\.?|₹)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}

	defaultReferencePatterns = []Pattern{
		P(`(?i)(?:ref(?:erence)?\s*(?:no\.?|#|:)?|txn\s*(?:id|no)\s*[:#]?|utr\s*[:#]?|transaction\s*id\s*[:#]?)\s*([A-Za-z0-9]{6,25})`),
	}

	defaultLimitPatterns = []Pattern{
		P(`(?i)av(?:l|bl|ailable)?\.?\s*(?:credit\s*)?limit\s*(?:is|:|\-)?\s*(?:INR|Rs\.?|₹|AED)?\s*\.?\s*([\d,]+(?:\.\d+)?)`),
	}

	defaultFromAccountPatterns = []Pattern{
		P(`(?i)(?:from|debited\s+from)\s+(?:your\s+)?(?:a\/c|acct|account)\s*(?:no\.?)?\s*[:\-]?\s*([Xx*]*[A-Za-z]{0,2}\d{3,6})`),
	}

	defaultToAccountPatterns = []Pattern{
		P(`(?i)(?:credited\s+)?to\s+(?:the\s+)?(?:beneficiary\s+)?(?:a\/c|acct|account)\s*(?:no\.?)?\s*[:\-]?\s*([Xx*]*[A-Za-z]{0,2}\d{3,6})`),
	}

	defaultTypeRules = []TypeRule{
		{Keywords: []string{"neft", "imps", "rtgs", "fund transfer", "transferred to", "transfer to a/c"}, Type: models.TypeTransfer},
		{Keywords: []string{"debited", "spent", "withdrawn", "purchase of", "deducted", "charged", "paid to", "sent to", "payment of"}, Type: models.TypeExpense},
		{Keywords: []string{"credited", "received", "deposited", "refund", "reversal"}, Type: models.TypeIncome},
	}

	defaultCardHints = []string{
		"credit card", "debit card", "card ending", "card no", "your card",
		"avl limit", "avail limit", "available limit", "visa", "mastercard",
		"rupay", "amex",
	}

	defaultCreditCardHints = []string{
		"credit card", "avl limit", "avail limit", "available limit",
		"credit limit",
	}
)

// Base implements the full Parser contract driven by a Config. Concrete
// parsers are Configs, not subclasses; everything here is read-only
// after New, so a Base is safe for concurrent use.
type Base struct {
	cfg     Config
	senders senderMatcher
	fcurRe  *regexp.Regexp
}

// New builds a parser from cfg, filling any empty field with the
// contract default.
func New(cfg Config) *Base {
	if cfg.TxnKeywords == nil {
		cfg.TxnKeywords = defaultTxnKeywords
	}
	if cfg.ExcludeTerms == nil {
		cfg.ExcludeTerms = defaultExcludeTerms
	}
	if cfg.AmountPatterns == nil {
		cfg.AmountPatterns = defaultAmountPatterns
	}
	if cfg.MerchantPatterns == nil {
		cfg.MerchantPatterns = defaultMerchantPatterns
	}
	if cfg.AccountPatterns == nil {
		cfg.AccountPatterns = defaultAccountPatterns
	}
	if cfg.BalancePatterns == nil {
		cfg.BalancePatterns = defaultBalancePatterns
	}
	if cfg.ReferencePatterns == nil {
		cfg.ReferencePatterns = defaultReferencePatterns
	}
	if cfg.LimitPatterns == nil {
		cfg.LimitPatterns = defaultLimitPatterns
	}
	if cfg.FromAccountPatterns == nil {
		cfg.FromAccountPatterns = defaultFromAccountPatterns
	}
	if cfg.ToAccountPatterns == nil {
		cfg.ToAccountPatterns = defaultToAccountPatterns
	}
	if cfg.TypeRules == nil {
		cfg.TypeRules = defaultTypeRules
	}
	if cfg.CardHints == nil {
		cfg.CardHints = defaultCardHints
	}
	if cfg.CreditCardHints == nil {
		cfg.CreditCardHints = defaultCreditCardHints
	}
	b := &Base{cfg: cfg, senders: cfg.Senders.compile()}
	if len(cfg.ForeignCurrencies) > 0 {
		b.fcurRe = regexp.MustCompile(`\b(` + strings.Join(cfg.ForeignCurrencies, "|") + `)\s*\.?\s*[\d,]`)
	}
	return b
}

func (b *Base) BankName() string { return b.cfg.Bank }
func (b *Base) Currency() string { return b.cfg.Currency }

func (b *Base) CanHandle(sender string) bool {
	return b.senders.matches(sender)
}

func (b *Base) normalize(text string) string {
	if b.cfg.Normalize != nil {
		return b.cfg.Normalize(text)
	}
	return text
}

// IsTransactionMessage is the gate: exclusions veto, then at least one
// transaction keyword must be present.
func (b *Base) IsTransactionMessage(text string) bool {
	lower := strings.ToLower(b.normalize(text))
	if containsAny(lower, b.cfg.ExcludeTerms) {
		return false
	}
	if b.cfg.Mandate != nil && b.cfg.Mandate.Detect(lower) {
		return false
	}
	return containsAny(lower, b.cfg.TxnKeywords)
}

// ExtractAmount runs the amount cascade. A match that fails decimal
// parsing is skipped, not reported.
func (b *Base) ExtractAmount(text string) (decimal.Decimal, bool) {
	text = b.normalize(text)
	for _, p := range b.cfg.AmountPatterns {
		m := p.Re.FindStringSubmatch(text)
		if m == nil || p.Group >= len(m) {
			continue
		}
		if d, ok := ParseAmount(m[p.Group]); ok && d.IsPositive() {
			return d, true
		}
	}
	return decimal.Zero, false
}

// ExtractTransactionType resolves the type from the keyword table.
// Investment terms win outright; a debit-verb message in a credit-card
// context resolves to CREDIT.
func (b *Base) ExtractTransactionType(text string) (models.TxnType, bool) {
	lower := strings.ToLower(b.normalize(text))
	if containsAny(lower, b.cfg.InvestmentTerms) {
		return models.TypeInvestment, true
	}
	for _, rule := range b.cfg.TypeRules {
		if !containsAny(lower, rule.Keywords) {
			continue
		}
		if rule.Type == models.TypeExpense && containsAny(lower, b.cfg.CreditCardHints) {
			return models.TypeCredit, true
		}
		return rule.Type, true
	}
	return "", false
}

// ExtractMerchant returns the cleaned counterpart name, falling back to
// a synthetic label when the text identifies the channel but not the
// counterpart.
func (b *Base) ExtractMerchant(text string) string {
	text = b.normalize(text)
	if raw, ok := firstMatch(b.cfg.MerchantPatterns, text); ok {
		name := CleanMerchantName(raw)
		if IsValidMerchantName(name) {
			return name
		}
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "atm"):
		return "ATM"
	case strings.Contains(lower, "upi"):
		return "UPI Transaction"
	case containsAny(lower, []string{"neft", "imps", "rtgs", "fund transfer"}):
		return "Fund Transfer"
	}
	return ""
}

// ExtractAccount returns the trailing digits of the masked account or
// card number, or the provider sentinel when configured.
func (b *Base) ExtractAccount(text string) string {
	text = b.normalize(text)
	if raw, ok := firstMatch(b.cfg.AccountPatterns, text); ok {
		if last := Last4(raw); last != "" {
			return last
		}
	}
	return b.cfg.SentinelAccount
}

// ExtractBalance returns the post-transaction balance when present.
func (b *Base) ExtractBalance(text string) *decimal.Decimal {
	text = b.normalize(text)
	if raw, ok := firstMatch(b.cfg.BalancePatterns, text); ok {
		if d, ok := ParseAmount(raw); ok {
			return &d
		}
	}
	return nil
}

// ExtractAvailableLimit returns the available credit limit when present.
func (b *Base) ExtractAvailableLimit(text string) *decimal.Decimal {
	text = b.normalize(text)
	if raw, ok := firstMatch(b.cfg.LimitPatterns, text); ok {
		if d, ok := ParseAmount(raw); ok {
			return &d
		}
	}
	return nil
}

// ExtractReference returns the provider-assigned reference number.
func (b *Base) ExtractReference(text string) string {
	raw, _ := firstMatch(b.cfg.ReferencePatterns, b.normalize(text))
	return raw
}

// ExtractCurrency returns the home currency unless a configured foreign
// currency code sits adjacent to a number (multi-currency card posting).
func (b *Base) ExtractCurrency(text string) string {
	if b.fcurRe != nil {
		if m := b.fcurRe.FindStringSubmatch(b.normalize(text)); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return b.cfg.Currency
}

// ExtractTransferEndpoints returns the masked source and destination
// account suffixes of a transfer, either possibly empty.
func (b *Base) ExtractTransferEndpoints(text string) (from, to string) {
	text = b.normalize(text)
	if raw, ok := firstMatch(b.cfg.FromAccountPatterns, text); ok {
		from = Last4(raw)
	}
	if raw, ok := firstMatch(b.cfg.ToAccountPatterns, text); ok {
		to = Last4(raw)
	}
	return from, to
}

// DetectIsCard reports whether the message reads like card activity.
func (b *Base) DetectIsCard(text string) bool {
	return containsAny(strings.ToLower(b.normalize(text)), b.cfg.CardHints)
}

// Parse is the orchestration entry point. It suppresses the whole record
// when the gate fails or either required field cannot be extracted; a
// wrong amount is worse than a missing transaction.
func (b *Base) Parse(text, sender string, timestampMillis int64) *models.Transaction {
	if !b.IsTransactionMessage(text) {
		return nil
	}
	amount, ok := b.ExtractAmount(text)
	if !ok {
		return nil
	}
	txnType, ok := b.ExtractTransactionType(text)
	if !ok {
		return nil
	}

	t := &models.Transaction{
		Amount:       amount,
		Type:         txnType,
		Merchant:     b.ExtractMerchant(text),
		Reference:    b.ExtractReference(text),
		AccountLast4: b.ExtractAccount(text),
		Balance:      b.ExtractBalance(text),
		CreditLimit:  b.ExtractAvailableLimit(text),
		Currency:     b.ExtractCurrency(text),
		IsFromCard:   b.DetectIsCard(text),
		RawBody:      text,
		RawSender:    sender,
		Timestamp:    timestampMillis,
		Bank:         b.cfg.Bank,
	}
	if b.cfg.PostProcess != nil {
		b.cfg.PostProcess(t, b.normalize(text))
	}
	// PostProcess may reclassify, so endpoints come last.
	if t.Type == models.TypeTransfer {
		t.FromAccount, t.ToAccount = b.ExtractTransferEndpoints(text)
	}
	return t
}
