// Package locale pins the Brazilian Portuguese presentation of amounts and
// dates. Output strings are compared byte for byte by API clients, so the
// separators, the no-break space after the currency symbol and the month
// names are part of the contract.
package locale

import (
	"math"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	nbsp = "\u00a0"

	longDateLayout = "2 de January de 2006"
)

type Formatter struct {
	printer        *message.Printer
	currencySymbol string
	dateLocale     monday.Locale
}

func NewBrazilian() *Formatter {
	return &Formatter{
		printer:        message.NewPrinter(language.BrazilianPortuguese),
		currencySymbol: "R$",
		dateLocale:     monday.LocalePtBR,
	}
}

// Currency renders an amount held in cents, e.g. 123450 -> "R$ 1.234,50".
func (f *Formatter) Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
	}
	value := number.Decimal(
		math.Abs(float64(cents))/100,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
	return sign + f.currencySymbol + nbsp + f.printer.Sprintf("%v", value)
}

// LongDate renders t in its own location, e.g. "10 de novembro de 2020".
func (f *Formatter) LongDate(t time.Time) string {
	return monday.Format(t, longDateLayout, f.dateLocale)
}
