package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a matched amount string like "1,234.56", "Rs.500"
// or "₹ 4,500.00" into a decimal. A string that does not survive decimal
// parsing is treated exactly like no match at all.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	for _, sym := range []string{"₹", "£", "$", "€", "฿", "Rs.", "Rs", "INR", "رال", "ریال"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, "/-")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// Eastern Arabic and extended (Persian) digits fold to ASCII so one set
// of numeric patterns covers Persian-script messages.
var digitFold = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", ",",
)

// FoldDigits rewrites Persian/Arabic-script digits to ASCII.
func FoldDigits(s string) string {
	return digitFold.Replace(s)
}

// Suffixes stripped off merchant names. Longer forms first so "Private
// Limited" goes before "Limited".
var merchantSuffixes = []string{
	"private limited", "pvt ltd", "pvt. ltd.", "pvt.ltd", "limited",
	"ltd.", "ltd", "llp", "llc", "inc.", "inc", "co.", "corp",
	"technologies", "solutions",
}

var (
	trailingRef   = regexp.MustCompile(`\s+(?:ref(?:erence)?\s*(?:no\.?)?\s*)?[A-Z0-9]{10,}$`)
	trailingPunct = regexp.MustCompile(`[\s.,:;\-*]+$`)
	leadingPunct  = regexp.MustCompile(`^[\s.,:;\-*]+`)
	multiSpace    = regexp.MustCompile(`\s{2,}`)
	allDigits     = regexp.MustCompile(`^[\d\s.,\-]+$`)
)

// merchantStopWords rejects degenerate single-word matches that are
// really prepositions or residue from the surrounding sentence.
var merchantStopWords = map[string]bool{
	"to": true, "from": true, "at": true, "on": true, "by": true,
	"for": true, "via": true, "your": true, "you": true, "the": true,
	"a/c": true, "ac": true, "account": true, "info": true, "upi": true,
	"card": true, "bank": true, "of": true, "with": true, "is": true,
}

// CleanMerchantName normalizes a raw merchant capture: trims boilerplate
// suffixes, trailing reference numbers and punctuation, and collapses
// whitespace. Shouting-case names are title-cased.
func CleanMerchantName(raw string) string {
	name := strings.TrimSpace(raw)
	name = trailingRef.ReplaceAllString(name, "")
	name = leadingPunct.ReplaceAllString(name, "")
	name = trailingPunct.ReplaceAllString(name, "")
	lower := strings.ToLower(name)
	for _, suf := range merchantSuffixes {
		if strings.HasSuffix(lower, suf) {
			name = strings.TrimSpace(name[:len(name)-len(suf)])
			name = trailingPunct.ReplaceAllString(name, "")
			lower = strings.ToLower(name)
		}
	}
	name = multiSpace.ReplaceAllString(name, " ")
	if name != "" && name == strings.ToUpper(name) && !strings.Contains(name, "@") {
		name = titleCase(name)
	}
	return name
}

// IsValidMerchantName rejects captures that cannot be a merchant: empty
// strings, pure numbers, stop-list words, and VPA handles with no
// readable prefix.
func IsValidMerchantName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || allDigits.MatchString(name) {
		return false
	}
	if !strings.Contains(name, " ") && merchantStopWords[strings.ToLower(name)] {
		return false
	}
	if at := strings.Index(name, "@"); at >= 0 {
		prefix := name[:at]
		if prefix == "" || allDigits.MatchString(prefix) {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if len(w) <= 3 && strings.Contains("upi atm pos neft imps rtgs emi sip", w) {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// monthNames maps short month tokens to their number, used when
// normalizing issuer-specific date strings found in mandate notices.
var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// MonthNumber resolves "Jan", "january" etc. to 1..12; 0 when unknown.
func MonthNumber(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) > 3 {
		name = name[:3]
	}
	return monthNames[name]
}

// Last4 returns the trailing digits of a masked account capture such as
// "XX1234", "*9876" or "AB12CD3456", keeping at most four.
func Last4(masked string) string {
	digits := make([]byte, 0, len(masked))
	for i := 0; i < len(masked); i++ {
		if masked[i] >= '0' && masked[i] <= '9' {
			digits = append(digits, masked[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}
