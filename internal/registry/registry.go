// Package registry wires every institution parser into one fixed,
// ordered resolution list.
package registry

import (
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
	"github.com/expensewise/sms-parser/internal/parser/gulf"
	"github.com/expensewise/sms-parser/internal/parser/india"
	"github.com/expensewise/sms-parser/internal/parser/momo"
	"github.com/expensewise/sms-parser/internal/parser/persian"
	"github.com/expensewise/sms-parser/internal/parser/thai"
)

// Registry is an immutable ordered collection of parsers. Resolution is
// first-match-wins over the fixed order, so it behaves identically on
// every call and is safe to share across goroutines.
type Registry struct {
	parsers []parser.Parser
}

// New constructs the registry with the full parser roster. Mobile-money
// providers are probed first: their sender IDs are short English words
// that regional banks' Contains matchers could otherwise swallow.
// Ordering within each region is that region's documented order.
func New() *Registry {
	var ps []parser.Parser
	ps = append(ps, momo.All()...)
	ps = append(ps, india.All()...)
	ps = append(ps, gulf.All()...)
	ps = append(ps, thai.All()...)
	ps = append(ps, persian.All()...)
	return &Registry{parsers: ps}
}

// NewWith builds a registry over an explicit parser list, preserving
// the given order. Used by tests and by callers embedding a subset.
func NewWith(ps ...parser.Parser) *Registry {
	return &Registry{parsers: ps}
}

// Resolve returns the first parser whose CanHandle accepts the sender,
// or nil when the sender is unrecognized.
func (r *Registry) Resolve(sender string) parser.Parser {
	for _, p := range r.parsers {
		if p.CanHandle(sender) {
			return p
		}
	}
	return nil
}

// Parse resolves the sender and runs the parser in one step. Nil means
// unknown sender, non-transactional message, or unextractable record;
// the caller treats all three as "leave the message alone".
func (r *Registry) Parse(body, sender string, timestampMillis int64) *models.Transaction {
	p := r.Resolve(sender)
	if p == nil {
		return nil
	}
	return p.Parse(body, sender, timestampMillis)
}

// Len reports the number of registered parsers.
func (r *Registry) Len() int { return len(r.parsers) }

// Banks returns the display name and home currency of every registered
// institution, in resolution order.
func (r *Registry) Banks() []BankInfo {
	out := make([]BankInfo, 0, len(r.parsers))
	for _, p := range r.parsers {
		out = append(out, BankInfo{Name: p.BankName(), Currency: p.Currency()})
	}
	return out
}

// BankInfo identifies a supported institution.
type BankInfo struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}
