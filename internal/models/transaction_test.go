package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleTxn() *Transaction {
	return &Transaction{
		Amount:    decimal.RequireFromString("500.00"),
		Type:      TypeExpense,
		Merchant:  "Swiggy",
		Currency:  "INR",
		RawBody:   "INR 500.00 debited from A/c XX1234 to SWIGGY.",
		RawSender: "VM-HDFCBK-S",
		Timestamp: 1735689600000,
		Bank:      "HDFC Bank",
	}
}

func TestGenerateIDIsStable(t *testing.T) {
	txn := sampleTxn()
	assert.Equal(t, txn.GenerateID(), txn.GenerateID())
	assert.Len(t, txn.GenerateID(), 64)
}

func TestGenerateIDIgnoresTimestamp(t *testing.T) {
	a := sampleTxn()
	b := sampleTxn()
	b.Timestamp = a.Timestamp + 99999
	assert.Equal(t, a.GenerateID(), b.GenerateID(),
		"the same SMS observed at two times is one transaction")
}

func TestGenerateIDSensitivity(t *testing.T) {
	base := sampleTxn()

	body := sampleTxn()
	body.RawBody = body.RawBody + " Ref 1"
	assert.NotEqual(t, base.GenerateID(), body.GenerateID(), "body change")

	sender := sampleTxn()
	sender.RawSender = "AX-ICICIB"
	assert.NotEqual(t, base.GenerateID(), sender.GenerateID(), "sender change")

	amount := sampleTxn()
	amount.Amount = decimal.RequireFromString("500.01")
	assert.NotEqual(t, base.GenerateID(), amount.GenerateID(), "amount change")
}

func TestGenerateIDAmountScale(t *testing.T) {
	a := sampleTxn()
	a.Amount = decimal.RequireFromString("500")
	b := sampleTxn()
	b.Amount = decimal.RequireFromString("500.00")
	assert.Equal(t, a.GenerateID(), b.GenerateID(),
		"fingerprint uses a fixed amount scale")
}
