package india

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// All returns the Indian parsers in resolution order. Order is load
// bearing: issuers whose sender routes are supersets of a bank's come
// first (SBI Card before State Bank of India, Jupiter and Fi before
// Federal, brokerages before everything that also says "debited").
func All() []parser.Parser {
	return []parser.Parser{
		// Card issuers
		NewAmex(),
		NewSBICard(),
		NewOneCard(),
		NewSlice(),
		// Brokerages and clearing
		NewZerodha(),
		NewGroww(),
		NewUpstox(),
		NewClearing(),
		// Neobank co-brands ahead of their partner bank
		NewJupiter(),
		NewFi(),
		// Payments banks
		NewPaytmBank(),
		NewAirtelBank(),
		// Major private banks
		NewHDFC(),
		NewICICI(),
		NewAxis(),
		NewKotak(),
		NewIDFCFirst(),
		NewYes(),
		NewIndusInd(),
		NewFederal(),
		NewRBL(),
		NewBandhan(),
		NewAUSmallFinance(),
		NewEquitas(),
		NewUjjivan(),
		NewJana(),
		NewSouthIndian(),
		NewKarnataka(),
		NewKarurVysya(),
		NewDBS(),
		// Public sector
		NewSBI(),
		NewPNB(),
		NewBankOfBaroda(),
		NewCanara(),
		NewUnion(),
		NewIDBI(),
		NewUCO(),
		NewCentralBank(),
		NewIndianBank(),
		NewBankOfIndia(),
		NewBankOfMaharashtra(),
		NewPunjabSind(),
		NewIndiaPost(),
		// Foreign banks
		NewCiti(),
		NewHSBCIndia(),
		NewStandardChartered(),
	}
}
