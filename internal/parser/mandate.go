package parser

import (
	"strings"

	"github.com/expensewise/sms-parser/internal/models"
)

// MandateDetector recognizes subscription-mandate notices: creation of a
// recurring-debit authorization or a reminder of an upcoming deduction.
// These announce future money movement and must never enter the
// transaction stream, but they carry enough structure to feed
// subscription tracking.
type MandateDetector struct {
	Terms        []string // lowercase phrases that mark a mandate notice
	AmountPats   []Pattern
	DatePats     []Pattern
	MerchantPats []Pattern
	UMNPat       Pattern // unique mandate number, optional
	DateFormat   string  // layout the issuer writes deduction dates in
}

// Detect reports whether lowered text is a mandate notice.
func (d *MandateDetector) Detect(lower string) bool {
	return containsAny(lower, d.Terms)
}

// Parse extracts the mandate details, or nil when the text is not a
// mandate notice or its amount does not parse.
func (d *MandateDetector) Parse(text string) *models.MandateInfo {
	if !d.Detect(strings.ToLower(text)) {
		return nil
	}
	raw, ok := firstMatch(d.AmountPats, text)
	if !ok {
		return nil
	}
	amount, ok := ParseAmount(raw)
	if !ok {
		return nil
	}
	info := &models.MandateInfo{
		Amount:     amount,
		DateFormat: d.DateFormat,
	}
	if date, ok := firstMatch(d.DatePats, text); ok {
		info.NextDeductionDate = date
	}
	if m, ok := firstMatch(d.MerchantPats, text); ok {
		if name := CleanMerchantName(m); IsValidMerchantName(name) {
			info.Merchant = name
		}
	}
	if d.UMNPat.Re != nil {
		if umn := d.UMNPat.Re.FindStringSubmatch(text); umn != nil && d.UMNPat.Group < len(umn) {
			info.UMN = umn[d.UMNPat.Group]
		}
	}
	return info
}

// BalanceRecognizer turns balance-only pings into BalanceInfo records.
// A balance ping mentions balance vocabulary with no transaction verb;
// such messages fail the parser gate and are offered here instead.
type BalanceRecognizer struct {
	Terms       []string // lowercase balance vocabulary
	TxnKeywords []string // verbs whose presence disqualifies a ping
	BalancePats []Pattern
	AccountPats []Pattern
	DatePat     Pattern // optional "as of" capture
}

// IsBalanceUpdate reports whether the text is a balance-only message.
func (r *BalanceRecognizer) IsBalanceUpdate(text string) bool {
	lower := strings.ToLower(text)
	if !containsAny(lower, r.Terms) {
		return false
	}
	keywords := r.TxnKeywords
	if keywords == nil {
		keywords = defaultTxnKeywords
	}
	return !containsAny(lower, keywords)
}

// Parse extracts the observed balance, or nil when the text is not a
// balance ping or the figure does not parse.
func (r *BalanceRecognizer) Parse(bank, text string, timestampMillis int64) *models.BalanceInfo {
	if !r.IsBalanceUpdate(text) {
		return nil
	}
	pats := r.BalancePats
	if pats == nil {
		pats = defaultBalancePatterns
	}
	raw, ok := firstMatch(pats, text)
	if !ok {
		return nil
	}
	bal, ok := ParseAmount(raw)
	if !ok {
		return nil
	}
	info := &models.BalanceInfo{
		Bank:      bank,
		Balance:   bal,
		Timestamp: timestampMillis,
	}
	accPats := r.AccountPats
	if accPats == nil {
		accPats = defaultAccountPatterns
	}
	if acc, ok := firstMatch(accPats, text); ok {
		info.AccountLast4 = Last4(acc)
	}
	if r.DatePat.Re != nil {
		if m := r.DatePat.Re.FindStringSubmatch(text); m != nil && r.DatePat.Group < len(m) {
			info.AsOf = m[r.DatePat.Group]
		}
	}
	return info
}
