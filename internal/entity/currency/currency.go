package currency

import (
	"github.com/shopspring/decimal"
	"max.ks1230/daily-calculator/internal/model/customerr"
)

const (
	RUB = "rub"
	USD = "usd"
	EUR = "eur"
)

var Currencies = []string{RUB, USD, EUR}

// Rate is how many units of the base currency (rub) one unit of Code costs.
type Rate struct {
	Code     string
	BaseRate decimal.Decimal
	Label    string
}

var rates = map[string]Rate{
	RUB: {Code: RUB, BaseRate: decimal.NewFromInt(1), Label: "руб"},
	USD: {Code: USD, BaseRate: decimal.NewFromInt(60), Label: "USD"},
	EUR: {Code: EUR, BaseRate: decimal.NewFromInt(70), Label: "Euro"},
}

func Lookup(code string) (Rate, error) {
	r, ok := rates[code]
	if !ok {
		return Rate{}, &customerr.UnknownCurrencyError{Code: code}
	}
	return r, nil
}
