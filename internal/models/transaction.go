package models

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/shopspring/decimal"
)

// TxnType classifies what a parsed message did to the account.
type TxnType string

const (
	TypeExpense    TxnType = "EXPENSE"
	TypeIncome     TxnType = "INCOME"
	TypeCredit     TxnType = "CREDIT" // spend on a credit card
	TypeTransfer   TxnType = "TRANSFER"
	TypeInvestment TxnType = "INVESTMENT"
)

// MomoAccountSentinel is used as AccountLast4 for mobile-money wallets,
// which have no masked account number to extract.
const MomoAccountSentinel = "MOMO"

// Transaction is the normalized record produced for a message that
// describes a real money movement. It is only constructed once both
// Amount and Type have resolved; there is no partially valid record.
type Transaction struct {
	Amount       decimal.Decimal  `json:"amount"`
	Type         TxnType          `json:"type"`
	Merchant     string           `json:"merchant,omitempty"`
	Reference    string           `json:"reference,omitempty"`
	AccountLast4 string           `json:"accountLast4,omitempty"`
	Balance      *decimal.Decimal `json:"balance,omitempty"`
	CreditLimit  *decimal.Decimal `json:"creditLimit,omitempty"`
	Currency     string           `json:"currency"`
	IsFromCard   bool             `json:"isFromCard"`

	// Transfer endpoints, populated only by parsers that model them.
	FromAccount string `json:"fromAccount,omitempty"`
	ToAccount   string `json:"toAccount,omitempty"`

	// Raw inputs, retained for audit and fingerprinting.
	RawBody   string `json:"rawBody,omitempty"`
	RawSender string `json:"rawSender"`
	Timestamp int64  `json:"timestamp"` // epoch millis, caller-supplied
	Bank      string `json:"bank"`
}

// GenerateID returns a stable content-derived identifier for dedup.
//
// The same physical SMS can be observed twice with different timestamps
// (push receiver vs. inbox scan), so the timestamp is deliberately left
// out: sender + amount at fixed scale + a truncated hash of the body.
func (t *Transaction) GenerateID() string {
	bodyHash := sha256.Sum256([]byte(t.RawBody))
	seed := t.RawSender + "|" + t.Amount.StringFixed(2) + "|" + hex.EncodeToString(bodyHash[:])[:16]
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
