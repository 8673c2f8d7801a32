package rental

import (
	"fmt"

	"car-rental/internal/pkg/errs"
)

type CurrencyFormatter interface {
	Currency(cents int64) string
}

type PriceCalculator interface {
	Quote(categoryPrice float64, age, numberOfDays int) (Money, error)
	FinalPrice(categoryPrice float64, age, numberOfDays int) (string, error)
}

type DefaultPriceCalculator struct {
	tax       *TaxPolicy
	formatter CurrencyFormatter
}

func NewDefaultPriceCalculator(tax *TaxPolicy, formatter CurrencyFormatter) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		tax:       tax,
		formatter: formatter,
	}
}

func (pc *DefaultPriceCalculator) Quote(categoryPrice float64, age, numberOfDays int) (Money, error) {
	if numberOfDays < 1 {
		return Money{}, errs.Wrap(errs.ErrInvalidDuration, fmt.Sprintf("got %d days", numberOfDays))
	}

	multiplier, err := pc.tax.TaxFor(age)
	if err != nil {
		return Money{}, err
	}

	return MoneyFromAmount(categoryPrice * multiplier * float64(numberOfDays))
}

func (pc *DefaultPriceCalculator) FinalPrice(categoryPrice float64, age, numberOfDays int) (string, error) {
	price, err := pc.Quote(categoryPrice, age, numberOfDays)
	if err != nil {
		return "", err
	}
	return pc.formatter.Currency(price.Cents()), nil
}
