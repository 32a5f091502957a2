package parser

import (
	"regexp"
	"strings"

	"github.com/expensewise/sms-parser/internal/models"
)

// Parser is the contract every institution parser satisfies. All
// operations are pure functions of their inputs: no I/O, no state, safe
// to call concurrently.
type Parser interface {
	// BankName returns the human-readable institution name.
	BankName() string
	// Currency returns the parser's home ISO 4217 currency code.
	Currency() string
	// CanHandle reports whether this parser recognizes the sender ID.
	// Probed in registry order for every message, so it must be cheap.
	CanHandle(sender string) bool
	// IsTransactionMessage reports whether the text describes an actual
	// money movement, as opposed to an OTP, promo, payment request,
	// mandate notice or balance ping.
	IsTransactionMessage(text string) bool
	// Parse returns the normalized record, or nil when the message is
	// not a transaction or a required field cannot be extracted.
	Parse(text, sender string, timestampMillis int64) *models.Transaction
}

// SenderMatch describes how a parser recognizes its sender IDs.
// Exact entries match the whole sender case-insensitively, Contains
// entries match anywhere in it, and Routes are DLT-style sender codes:
// a route code "HDFCBK" matches "AX-HDFCBK", "VM-HDFCBK-S" and the bare
// code itself.
type SenderMatch struct {
	Exact    []string
	Contains []string
	Routes   []string
}

// dltRoute builds the matcher for one DLT route code.
// Shapes seen in the wild: CODE, XX-CODE, XXCODE, XX-CODE-S.
func dltRoute(code string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:[A-Z]{2}-?)?` + regexp.QuoteMeta(code) + `(?:-[A-Z])?$`)
}

// compile turns the declarative match into predicate form.
func (m SenderMatch) compile() senderMatcher {
	sm := senderMatcher{
		exact:    make([]string, len(m.Exact)),
		contains: make([]string, len(m.Contains)),
	}
	for i, s := range m.Exact {
		sm.exact[i] = strings.ToUpper(s)
	}
	for i, s := range m.Contains {
		sm.contains[i] = strings.ToUpper(s)
	}
	for _, code := range m.Routes {
		sm.routes = append(sm.routes, dltRoute(code))
	}
	return sm
}

type senderMatcher struct {
	exact    []string
	contains []string
	routes   []*regexp.Regexp
}

func (m senderMatcher) matches(sender string) bool {
	up := strings.ToUpper(strings.TrimSpace(sender))
	for _, e := range m.exact {
		if up == e {
			return true
		}
	}
	for _, c := range m.contains {
		if strings.Contains(up, c) {
			return true
		}
	}
	for _, re := range m.routes {
		if re.MatchString(up) {
			return true
		}
	}
	return false
}

// Pattern is one step of an extraction cascade: a compiled expression
// plus the submatch index that carries the value. Cascades are evaluated
// in order and the first successful step wins.
type Pattern struct {
	Re    *regexp.Regexp
	Group int
}

// P is shorthand for building a Pattern with submatch group 1.
func P(expr string) Pattern {
	return Pattern{Re: regexp.MustCompile(expr), Group: 1}
}

// firstMatch runs a cascade and returns the first non-empty capture.
func firstMatch(pats []Pattern, text string) (string, bool) {
	for _, p := range pats {
		m := p.Re.FindStringSubmatch(text)
		if m == nil || p.Group >= len(m) {
			continue
		}
		if v := strings.TrimSpace(m[p.Group]); v != "" {
			return v, true
		}
	}
	return "", false
}

// TypeRule maps trigger keywords (matched case-insensitively anywhere in
// the text) to a transaction type. Rules are evaluated in order.
type TypeRule struct {
	Keywords []string
	Type     models.TxnType
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
