package momo

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// NewMpesaKE: Safaricom M-PESA, Kenya.
//
//	"QGH7YW12MN Confirmed. Ksh500.00 sent to JOHN DOE 0722000000 on 1/1/25 at 12:01 PM.
//	 New M-PESA balance is Ksh4,500.00. Transaction cost, Ksh7.00."
func NewMpesaKE() parser.Parser {
	return parser.New(momoConfig("M-PESA", "KES", parser.SenderMatch{
		Exact: []string{"MPESA", "M-PESA"},
	}))
}

// NewMpesaTZ: Vodacom M-Pesa, Tanzania. Shares the "MPESA" sender
// prefix with Kenya and must be probed first or Tanzanian receipts get
// priced in KES.
func NewMpesaTZ() parser.Parser {
	return parser.New(momoConfig("M-Pesa Tanzania", "TZS", parser.SenderMatch{
		Exact:    []string{"MPESA-TZ", "M-PESA TZ"},
		Contains: []string{"MPESATZ"},
	}))
}

// NewMTNMoMoUG precedes Ghana: both ride the "MTNMOMO" prefix.
func NewMTNMoMoUG() parser.Parser {
	return parser.New(momoConfig("MTN MoMo Uganda", "UGX", parser.SenderMatch{
		Exact:    []string{"MTNMOMO-UG", "MTN-UG"},
		Contains: []string{"MTNMOMOUG"},
	}))
}

func NewMTNMoMoGH() parser.Parser {
	return parser.New(momoConfig("MTN MoMo Ghana", "GHS", parser.SenderMatch{
		Exact:    []string{"MTNMOMO", "MobileMoney"},
		Contains: []string{"MTN MOBILE MONEY"},
	}))
}

func NewAirtelMoney() parser.Parser {
	return parser.New(momoConfig("Airtel Money", "KES", parser.SenderMatch{
		Exact:    []string{"AIRTELMONEY", "Airtel Money"},
		Contains: []string{"AIRTELMONEY"},
	}))
}

func NewTigoPesa() parser.Parser {
	return parser.New(momoConfig("Tigo Pesa", "TZS", parser.SenderMatch{
		Exact:    []string{"TIGOPESA", "Tigo Pesa"},
		Contains: []string{"TIGOPESA"},
	}))
}

// NewBkash: bKash, Bangladesh.
//
//	"You have received Tk 500.00 from 01712345678. Fee Tk 0.00.
//	 Balance Tk 1,250.00. TrxID 8AB12CD3EF at 01/01/2025 12:01"
func NewBkash() parser.Parser {
	return parser.New(momoConfig("bKash", "BDT", parser.SenderMatch{
		Exact: []string{"BKASH", "bKash"},
	}))
}

func NewNagad() parser.Parser {
	return parser.New(momoConfig("Nagad", "BDT", parser.SenderMatch{
		Exact: []string{"NAGAD", "Nagad"},
	}))
}

// NewRocket: Dutch-Bangla Bank's wallet, Bangladesh.
func NewRocket() parser.Parser {
	return parser.New(momoConfig("Rocket", "BDT", parser.SenderMatch{
		Exact:    []string{"ROCKET", "16216"},
		Contains: []string{"DBBL ROCKET"},
	}))
}

// NewVodafoneCash shares the Ghanaian receipt template with MTN MoMo.
func NewVodafoneCash() parser.Parser {
	return parser.New(momoConfig("Vodafone Cash", "GHS", parser.SenderMatch{
		Exact:    []string{"VODAFONECASH", "Vodafone Cash"},
		Contains: []string{"VODAFONE CASH"},
	}))
}

func NewHaloPesa() parser.Parser {
	return parser.New(momoConfig("HaloPesa", "TZS", parser.SenderMatch{
		Exact:    []string{"HALOPESA", "HaloPesa"},
		Contains: []string{"HALOPESA"},
	}))
}

func NewEasyPaisa() parser.Parser {
	return parser.New(momoConfig("Easypaisa", "PKR", parser.SenderMatch{
		Exact:    []string{"EASYPAISA", "Easypaisa", "3737"},
		Contains: []string{"EASYPAISA"},
	}))
}

func NewJazzCash() parser.Parser {
	return parser.New(momoConfig("JazzCash", "PKR", parser.SenderMatch{
		Exact:    []string{"JAZZCASH", "JazzCash", "4444"},
		Contains: []string{"JAZZCASH"},
	}))
}

// All returns the mobile-money parsers in resolution order. Country
// variants sharing a sender prefix go most-specific first (M-Pesa TZ
// before KE, MTN Uganda before Ghana) so the wrong currency is never
// applied.
func All() []parser.Parser {
	return []parser.Parser{
		NewMpesaTZ(),
		NewMpesaKE(),
		NewMTNMoMoUG(),
		NewMTNMoMoGH(),
		NewAirtelMoney(),
		NewTigoPesa(),
		NewHaloPesa(),
		NewBkash(),
		NewNagad(),
		NewRocket(),
		NewVodafoneCash(),
		NewEasyPaisa(),
		NewJazzCash(),
	}
}
