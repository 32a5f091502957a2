package models

import "github.com/shopspring/decimal"

// MandateInfo describes a recurring-debit authorization announced by a
// bank (UPI AutoPay, e-NACH and similar). Mandate notices are not
// transactions; they are surfaced separately for subscription tracking.
type MandateInfo struct {
	Amount            decimal.Decimal `json:"amount"`
	NextDeductionDate string          `json:"nextDeductionDate"`
	Merchant          string          `json:"merchant"`
	UMN               string          `json:"umn,omitempty"` // unique mandate number, when present
	DateFormat        string          `json:"dateFormat"`    // layout of NextDeductionDate as the issuer writes it
}

// BalanceInfo is a lightweight observation extracted from balance-only
// messages, which are excluded from the transaction stream.
type BalanceInfo struct {
	Bank         string          `json:"bank"`
	AccountLast4 string          `json:"accountLast4,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	AsOf         string          `json:"asOf,omitempty"` // raw date string as written in the message
	Timestamp    int64           `json:"timestamp"`
}
