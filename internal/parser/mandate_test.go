package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testMandateDetector() *MandateDetector {
	return &MandateDetector{
		Terms: []string{"e-mandate", "upi autopay", "will be debited"},
		AmountPats: []Pattern{
			P(`(?i)(?:INR|Rs\.?|₹)\s*\.?\s*([\d,]+(?:\.\d+)?)`),
		},
		DatePats: []Pattern{
			P(`(?i)on\s+(\d{2}[/-]\d{2}[/-]\d{2,4})`),
		},
		MerchantPats: []Pattern{
			P(`(?i)(?:towards|for)\s+([A-Za-z][A-Za-z0-9 .&'\-]{1,40}?)(?:\s+on\b|[.,;]|$)`),
		},
		UMNPat:     P(`(?i)umn\s*[:\-]?\s*([a-z0-9@.]+)`),
		DateFormat: "02/01/2006",
	}
}

func TestMandateDetect(t *testing.T) {
	d := testMandateDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"autopay setup", "upi autopay mandate of rs.199 set for spotify", true},
		{"upcoming deduction", "rs.499 will be debited from your account on 05/01/2025 towards netflix", true},
		{"plain debit", "rs.500 debited from a/c xx1234 to swiggy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMandateParse(t *testing.T) {
	d := testMandateDetector()

	info := d.Parse("E-mandate set: Rs.499.00 will be debited on 05/01/2025 towards NETFLIX. UMN: abc123@okaxis")
	if info == nil {
		t.Fatal("expected mandate info")
	}
	if !info.Amount.Equal(decimal.RequireFromString("499")) {
		t.Errorf("amount = %s, want 499", info.Amount)
	}
	if info.NextDeductionDate != "05/01/2025" {
		t.Errorf("date = %q, want 05/01/2025", info.NextDeductionDate)
	}
	if info.Merchant != "NETFLIX" && info.Merchant != "Netflix" {
		t.Errorf("merchant = %q", info.Merchant)
	}
	if info.UMN != "abc123@okaxis" {
		t.Errorf("umn = %q, want abc123@okaxis", info.UMN)
	}
	if info.DateFormat != "02/01/2006" {
		t.Errorf("date format = %q", info.DateFormat)
	}

	if got := d.Parse("Rs.500 debited from A/c XX1234 to SWIGGY."); got != nil {
		t.Errorf("non-mandate text: got %+v, want nil", got)
	}
	if got := d.Parse("Your e-mandate towards SPOTIFY is active."); got != nil {
		t.Errorf("mandate with no amount: got %+v, want nil", got)
	}
}

func TestBalanceRecognizer(t *testing.T) {
	r := &BalanceRecognizer{
		Terms:   []string{"avl bal", "available balance", "a/c balance"},
		DatePat: P(`(?i)as\s+on\s+([0-9/\-: ]+\d)`),
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"balance ping", "A/c XX1234: Avl Bal is INR 4,500.00 as on 01-01-25.", true},
		{"debit with balance trailer", "Rs.200 debited via UPI. Avl Bal Rs.9,800.00", false},
		{"no balance vocabulary", "Your statement is ready for download.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsBalanceUpdate(tt.text); got != tt.want {
				t.Errorf("IsBalanceUpdate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}

	info := r.Parse("HDFC Bank", "A/c XX1234: Avl Bal is INR 4,500.00 as on 01-01-25.", 1735689600000)
	if info == nil {
		t.Fatal("expected balance info")
	}
	if info.Bank != "HDFC Bank" {
		t.Errorf("bank = %q", info.Bank)
	}
	if !info.Balance.Equal(decimal.RequireFromString("4500")) {
		t.Errorf("balance = %s, want 4500", info.Balance)
	}
	if info.AccountLast4 != "1234" {
		t.Errorf("account = %q, want 1234", info.AccountLast4)
	}
	if info.AsOf != "01-01-25" {
		t.Errorf("as-of = %q, want 01-01-25", info.AsOf)
	}
	if info.Timestamp != 1735689600000 {
		t.Errorf("timestamp = %d", info.Timestamp)
	}

	if got := r.Parse("HDFC Bank", "Rs.200 debited via UPI. Avl Bal Rs.9,800.00", 0); got != nil {
		t.Errorf("transaction text must not produce balance info, got %+v", got)
	}
}
