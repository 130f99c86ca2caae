package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"max.ks1230/daily-calculator/internal/entity/currency"
)

const cashPlaces = 2

const (
	noMoneyMessage       = "Денег нет, держись"
	cashRemainedTemplate = "На сегодня осталось %s %s"
	debtTemplate         = noMoneyMessage + ": твой долг - %s %s"
)

// CashCalculator reports the daily remainder in one of the supported currencies.
// The limit is in rubles.
type CashCalculator struct {
	*Calculator
}

func NewCash(limit decimal.Decimal, opts ...Option) *CashCalculator {
	return &CashCalculator{New(limit, opts...)}
}

func (c *CashCalculator) ConversionRate(code string) (decimal.Decimal, error) {
	rate, err := currency.Lookup(code)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.BaseRate, nil
}

// TodayCashRemained rounds half to even to two places. The message branch is
// chosen by the sign of the unrounded value.
func (c *CashCalculator) TodayCashRemained(code string) (string, error) {
	rate, err := currency.Lookup(code)
	if err != nil {
		return "", err
	}
	observeQuery(queryCash)

	remained := c.remained().Div(rate.BaseRate)
	rounded := remained.RoundBank(cashPlaces)

	switch remained.Sign() {
	case 0:
		return noMoneyMessage, nil
	case 1:
		return fmt.Sprintf(cashRemainedTemplate, rounded, rate.Label), nil
	default:
		return fmt.Sprintf(debtTemplate, rounded.Abs(), rate.Label), nil
	}
}
