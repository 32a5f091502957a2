package registry

import (
	"testing"

	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownSenders(t *testing.T) {
	r := New()

	tests := []struct {
		sender string
		bank   string
	}{
		{"VM-HDFCBK-S", "HDFC Bank"},
		{"AX-ICICIB", "ICICI Bank"},
		{"CBSSBI", "State Bank of India"},
		{"BZ-SBICRD", "SBI Card"},
		{"MPESA", "M-PESA"},
		{"MPESA-TZ", "M-Pesa Tanzania"},
		{"EmiratesNBD", "Emirates NBD"},
		{"KBank", "Kasikornbank"},
		{"BankMelli", "Bank Melli"},
		{"bKash", "bKash"},
	}

	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			p := r.Resolve(tt.sender)
			require.NotNil(t, p, "sender %s must resolve", tt.sender)
			assert.Equal(t, tt.bank, p.BankName())
		})
	}
}

func TestResolveUnknownSenderIsNil(t *testing.T) {
	r := New()
	assert.Nil(t, r.Resolve("AX-RANDOM"))
	assert.Nil(t, r.Resolve("+15551234567"))
	assert.Nil(t, r.Resolve(""))
}

func TestParseEndToEnd(t *testing.T) {
	r := New()

	txn := r.Parse("INR 500.00 debited from A/c XX1234 on 01-01-25 to SWIGGY. Avl Bal is INR 4,500.00", "VM-HDFCBK-S", 1735689600000)
	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, models.TypeExpense, txn.Type)
	assert.Equal(t, "HDFC Bank", txn.Bank)
	assert.Equal(t, "Swiggy", txn.Merchant)

	assert.Nil(t, r.Parse("hello there", "+15551234567", 0), "unknown sender")
	assert.Nil(t, r.Parse("123456 is your OTP for Rs.500. Do not share.", "VM-HDFCBK-S", 0), "non-transaction")
}

func TestFirstMatchWinsInGivenOrder(t *testing.T) {
	a := parser.New(parser.Config{Bank: "A", Currency: "INR", Senders: parser.SenderMatch{Contains: []string{"SHARED"}}})
	b := parser.New(parser.Config{Bank: "B", Currency: "INR", Senders: parser.SenderMatch{Contains: []string{"SHARED"}}})

	require.Equal(t, "A", NewWith(a, b).Resolve("XX-SHARED").BankName())
	require.Equal(t, "B", NewWith(b, a).Resolve("XX-SHARED").BankName())
}

func TestRegistryIsStableAcrossConstructions(t *testing.T) {
	first := New()
	second := New()
	require.Equal(t, first.Len(), second.Len())

	body := "QGH7YW12MN Confirmed. Ksh500.00 sent to JOHN DOE 0722000000. New M-PESA balance is Ksh4,500.00."
	t1 := first.Parse(body, "MPESA", 9)
	t2 := second.Parse(body, "MPESA", 9)
	require.NotNil(t, t1)
	require.NotNil(t, t2)
	assert.Equal(t, t1.GenerateID(), t2.GenerateID())
	assert.Equal(t, t1.Bank, t2.Bank)
	assert.Equal(t, t1.Type, t2.Type)
}

func TestDuplicateObservationsShareFingerprint(t *testing.T) {
	r := New()
	body := "INR 500.00 debited from A/c XX1234 on 01-01-25 to SWIGGY. Avl Bal is INR 4,500.00"

	push := r.Parse(body, "VM-HDFCBK-S", 1735689600000)
	scan := r.Parse(body, "VM-HDFCBK-S", 1735689699999)
	require.NotNil(t, push)
	require.NotNil(t, scan)
	assert.Equal(t, push.GenerateID(), scan.GenerateID(), "timestamp must not affect the fingerprint")
}

// End-to-end sweep across regions: each message routes by sender alone
// and comes back priced in the institution's currency.
func TestParseAcrossRegions(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		sender   string
		body     string
		bank     string
		currency string
		txnType  models.TxnType
		amount   string
	}{
		{
			name:     "india upi debit",
			sender:   "VM-HDFCBK-S",
			body:     "INR 500.00 debited from A/c XX1234 on 01-01-25 to SWIGGY. Avl Bal is INR 4,500.00",
			bank:     "HDFC Bank",
			currency: "INR",
			txnType:  models.TypeExpense,
			amount:   "500",
		},
		{
			name:     "india semicolon counterpart",
			sender:   "AX-ICICIB",
			body:     "ICICI Bank Acct XX123 debited for Rs 500.00 on 01-Jan-25; SWIGGY credited. UPI:400123456789",
			bank:     "ICICI Bank",
			currency: "INR",
			txnType:  models.TypeExpense,
			amount:   "500",
		},
		{
			name:     "gulf home currency purchase",
			sender:   "EmiratesNBD",
			body:     "Purchase of AED 150.00 with Debit Card ending 1234 at CARREFOUR, DUBAI. Avl Bal AED 12,345.67",
			bank:     "Emirates NBD",
			currency: "AED",
			txnType:  models.TypeExpense,
			amount:   "150",
		},
		{
			name:     "gulf foreign currency card posting",
			sender:   "ENBD",
			body:     "Purchase of USD 49.99 with Credit Card ending 7890 at NETFLIX.COM. Avl Limit AED 19,500.00",
			bank:     "Emirates NBD",
			currency: "USD",
			txnType:  models.TypeCredit,
			amount:   "49.99",
		},
		{
			name:     "thai english withdrawal",
			sender:   "KBANK",
			body:     "Withdraw 500.00THB from a/c X1234 outstanding balance 4,500.00THB",
			bank:     "Kasikornbank",
			currency: "THB",
			txnType:  models.TypeExpense,
			amount:   "500",
		},
		{
			name:     "momo sent with trailing fee",
			sender:   "MPESA",
			body:     "QGH7YW12MN Confirmed. Ksh500.00 sent to JOHN DOE 0722000000 on 1/1/25 at 12:01 PM. New M-PESA balance is Ksh4,500.00. Transaction cost, Ksh7.00.",
			bank:     "M-PESA",
			currency: "KES",
			txnType:  models.TypeExpense,
			amount:   "500",
		},
		{
			name:     "momo received",
			sender:   "bKash",
			body:     "You have received Tk 500.00 from 01712345678. Fee Tk 0.00. Balance Tk 1,250.00. TrxID 8AB12CD3EF at 01/01/2025 12:01",
			bank:     "bKash",
			currency: "BDT",
			txnType:  models.TypeIncome,
			amount:   "500",
		},
		{
			name:     "persian digits withdrawal",
			sender:   "BankMelli",
			body:     "بانک ملی\nحساب: *1234\nبرداشت: ۵۰۰,۰۰۰\nمانده: ۲,۰۰۰,۰۰۰",
			bank:     "Bank Melli",
			currency: "IRR",
			txnType:  models.TypeExpense,
			amount:   "500000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := r.Parse(tt.body, tt.sender, 1735689600000)
			require.NotNil(t, txn)
			assert.Equal(t, tt.bank, txn.Bank)
			assert.Equal(t, tt.currency, txn.Currency)
			assert.Equal(t, tt.txnType, txn.Type)
			assert.True(t, txn.Amount.Equal(decimal.RequireFromString(tt.amount)),
				"amount = %s, want %s", txn.Amount, tt.amount)
		})
	}
}

// Senders that differ by a character or share a prefix must land on
// their own institution regardless of roster position.
func TestLookAlikeSendersResolveDistinctly(t *testing.T) {
	r := New()

	tests := []struct {
		sender string
		bank   string
	}{
		{"SCB", "Siam Commercial Bank"},
		{"VM-SCBANK-S", "Standard Chartered"},
		{"KTC", "KTC"},
		{"KTB", "Krungthai Bank"},
		{"VM-CITIBK-S", "Citibank"},
		{"16216", "Rocket"},
	}

	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			p := r.Resolve(tt.sender)
			require.NotNil(t, p, "sender %s must resolve", tt.sender)
			assert.Equal(t, tt.bank, p.BankName())
		})
	}
}
