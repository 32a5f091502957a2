package persian

import (
	"github.com/expensewise/sms-parser/internal/parser"
)

// NewMelli: Bank Melli Iran.
//
//	"بانک ملی
//	 حساب: *1234
//	 برداشت: ۵۰۰,۰۰۰
//	 مانده: ۲,۰۰۰,۰۰۰"
func NewMelli() parser.Parser {
	cfg := baseConfig("Bank Melli")
	cfg.Senders = parser.SenderMatch{Exact: []string{"BankMelli", "Melli"}, Contains: []string{"MELLI"}}
	return parser.New(cfg)
}

func NewMellat() parser.Parser {
	cfg := baseConfig("Bank Mellat")
	cfg.Senders = parser.SenderMatch{Exact: []string{"BankMellat", "Mellat"}, Contains: []string{"MELLAT"}}
	return parser.New(cfg)
}

func NewSaderat() parser.Parser {
	cfg := baseConfig("Bank Saderat")
	cfg.Senders = parser.SenderMatch{Exact: []string{"BSaderat", "Saderat"}, Contains: []string{"SADERAT"}}
	return parser.New(cfg)
}

func NewParsian() parser.Parser {
	cfg := baseConfig("Parsian Bank")
	cfg.Senders = parser.SenderMatch{Exact: []string{"Parsian"}, Contains: []string{"PARSIAN"}}
	return parser.New(cfg)
}

func NewPasargad() parser.Parser {
	cfg := baseConfig("Bank Pasargad")
	cfg.Senders = parser.SenderMatch{Exact: []string{"Pasargad", "BPI"}, Contains: []string{"PASARGAD"}}
	return parser.New(cfg)
}

// All returns the Iranian parsers in resolution order. Mellat precedes
// Melli: "MELLI" is a substring of neither, but aggregator senders have
// been seen carrying both names and the longer match must win.
func All() []parser.Parser {
	return []parser.Parser{
		NewMellat(),
		NewMelli(),
		NewSaderat(),
		NewParsian(),
		NewPasargad(),
	}
}
