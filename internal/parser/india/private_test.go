package india

import (
	"testing"

	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/parser"
	"github.com/shopspring/decimal"
)

func TestIDFCNewBalAndUPISlashMerchant(t *testing.T) {
	p := NewIDFCFirst()
	body := "Your A/C XXXXX1234 has been debited by INR 500.00 on 01-Jan-25 towards UPI/merchant@ybl. New Bal: INR 4,500.00"

	txn := p.Parse(body, "AD-IDFCFB", 1735689600000)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	mustEqual(t, txn.Amount, "500")
	if txn.Type != models.TypeExpense {
		t.Errorf("type = %q, want %q", txn.Type, models.TypeExpense)
	}
	if txn.Merchant != "merchant@ybl" {
		t.Errorf("merchant = %q, want merchant@ybl", txn.Merchant)
	}
	if txn.AccountLast4 != "1234" {
		t.Errorf("account = %q, want 1234", txn.AccountLast4)
	}
	if txn.Balance == nil || !txn.Balance.Equal(decimal.RequireFromString("4500")) {
		t.Errorf("balance = %v, want 4500", txn.Balance)
	}
}

func TestYesBankVPATrailer(t *testing.T) {
	p := NewYes()
	body := "INR 500.00 debited from A/c XX1234 to VPA merchant@ybl on 01-01-25. UPI Ref 400123456789 -YES BANK"

	txn := p.Parse(body, "VM-YESBNK", 0)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	if txn.Merchant != "merchant@ybl" {
		t.Errorf("merchant = %q, want merchant@ybl", txn.Merchant)
	}
	if txn.Reference != "400123456789" {
		t.Errorf("reference = %q, want 400123456789", txn.Reference)
	}
}

func TestIndusIndCounterpartAfterAnd(t *testing.T) {
	p := NewIndusInd()
	body := "A/c *1234 debited for Rs 500.00 on 01-Jan-25 and a/c merchant@okicici credited. IMPS Ref 123456789012"

	txn := p.Parse(body, "VM-INDUSB", 0)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	mustEqual(t, txn.Amount, "500")
	// IMPS marks a transfer even though both debit and credit verbs appear.
	if txn.Type != models.TypeTransfer {
		t.Errorf("type = %q, want %q", txn.Type, models.TypeTransfer)
	}
	if txn.Merchant != "merchant@okicici" {
		t.Errorf("merchant = %q, want merchant@okicici", txn.Merchant)
	}
	if txn.AccountLast4 != "1234" {
		t.Errorf("account = %q, want 1234", txn.AccountLast4)
	}
	if txn.Reference != "123456789012" {
		t.Errorf("reference = %q, want 123456789012", txn.Reference)
	}
}

func TestRBLTransactionOfCardSpend(t *testing.T) {
	p := NewRBL()
	body := "Transaction of INR 1,500.00 done on RBL Bank Credit Card XX7890 at AMAZON on 01-01-25. Avl Limit INR 48,500.00"

	txn := p.Parse(body, "VM-RBLCRD", 0)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	mustEqual(t, txn.Amount, "1500")
	if txn.Type != models.TypeCredit {
		t.Errorf("type = %q, want %q", txn.Type, models.TypeCredit)
	}
	if !txn.IsFromCard {
		t.Error("expected IsFromCard")
	}
	if txn.Merchant != "Amazon" {
		t.Errorf("merchant = %q, want Amazon", txn.Merchant)
	}
	if txn.AccountLast4 != "7890" {
		t.Errorf("account = %q, want 7890", txn.AccountLast4)
	}
	if txn.CreditLimit == nil || !txn.CreditLimit.Equal(decimal.RequireFromString("48500")) {
		t.Errorf("credit limit = %v, want 48500", txn.CreditLimit)
	}
}

func TestPSUColonAmountStyle(t *testing.T) {
	p := NewBankOfIndia()
	body := "A/c XX1234 Debited for Rs:500.00 on 01-01-2025. Avl Bal Rs:4500.00"

	txn := p.Parse(body, "AD-BOIIND", 0)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	mustEqual(t, txn.Amount, "500")
	if txn.Type != models.TypeExpense {
		t.Errorf("type = %q, want %q", txn.Type, models.TypeExpense)
	}
	if txn.AccountLast4 != "1234" {
		t.Errorf("account = %q, want 1234", txn.AccountLast4)
	}
	if txn.Balance == nil || !txn.Balance.Equal(decimal.RequireFromString("4500")) {
		t.Errorf("balance = %v, want 4500", txn.Balance)
	}
	if txn.Bank != "Bank of India" {
		t.Errorf("bank = %q", txn.Bank)
	}
}

func TestSmallFinanceDefaults(t *testing.T) {
	p := NewUjjivan()
	if !p.CanHandle("JX-UJJSFB") {
		t.Fatal("expected sender to route")
	}
	body := "Rs.250.00 sent to merchant@upi from A/c XX5678. Avl Bal Rs.750.00"

	txn := p.Parse(body, "JX-UJJSFB", 0)
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	mustEqual(t, txn.Amount, "250")
	if txn.Type != models.TypeExpense {
		t.Errorf("type = %q, want %q", txn.Type, models.TypeExpense)
	}
	if txn.Merchant != "merchant@upi" {
		t.Errorf("merchant = %q, want merchant@upi", txn.Merchant)
	}
	if txn.AccountLast4 != "5678" {
		t.Errorf("account = %q, want 5678", txn.AccountLast4)
	}
}

// Banks that ride the regional defaults unchanged share one UPI fixture
// shape; only the name and sender route differ.
func TestDefaultTemplateBanks(t *testing.T) {
	tests := []struct {
		bank   string
		sender string
		build  func() parser.Parser
	}{
		{"South Indian Bank", "VM-SIBSMS-S", NewSouthIndian},
		{"Karnataka Bank", "AX-KBLBNK", NewKarnataka},
		{"Karur Vysya Bank", "KVBANK", NewKarurVysya},
		{"Bandhan Bank", "JD-BDNBNK-S", NewBandhan},
		{"AU Small Finance Bank", "AUBANK", NewAUSmallFinance},
		{"Equitas Small Finance Bank", "VK-EQUTAS", NewEquitas},
		{"Jana Small Finance Bank", "JANABK", NewJana},
		{"DBS Bank", "VM-DBSBNK-S", NewDBS},
	}

	body := "Rs.750.00 sent to alice@okhdfcbank from A/c XX2211 on 01-01-25. Avl Bal Rs.3,250.00"
	for _, tt := range tests {
		t.Run(tt.bank, func(t *testing.T) {
			p := tt.build()
			if !p.CanHandle(tt.sender) {
				t.Fatalf("sender %q not recognized", tt.sender)
			}

			txn := p.Parse(body, tt.sender, 0)
			if txn == nil {
				t.Fatal("expected a transaction")
			}
			if txn.Bank != tt.bank {
				t.Errorf("bank = %q, want %q", txn.Bank, tt.bank)
			}
			if !txn.Amount.Equal(decimal.RequireFromString("750")) {
				t.Errorf("amount = %s, want 750", txn.Amount)
			}
			if txn.Type != models.TypeExpense {
				t.Errorf("type = %q, want %q", txn.Type, models.TypeExpense)
			}
			if txn.Merchant != "alice@okhdfcbank" {
				t.Errorf("merchant = %q, want alice@okhdfcbank", txn.Merchant)
			}
			if txn.AccountLast4 != "2211" {
				t.Errorf("account = %q, want 2211", txn.AccountLast4)
			}
			if txn.Balance == nil || !txn.Balance.Equal(decimal.RequireFromString("3250")) {
				t.Errorf("balance = %v, want 3250", txn.Balance)
			}
		})
	}
}
