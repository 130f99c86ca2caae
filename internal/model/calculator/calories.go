package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	caloriesRemainedTemplate = "Сегодня можно съесть что-нибудь ещё, но с общей калорийностью не более %s кКал"
	stopEatingMessage        = "Хватит есть!"
)

type CaloriesCalculator struct {
	*Calculator
}

func NewCalories(limit decimal.Decimal, opts ...Option) *CaloriesCalculator {
	return &CaloriesCalculator{New(limit, opts...)}
}

// CaloriesRemained treats an exactly spent limit the same as an overspent one.
func (c *CaloriesCalculator) CaloriesRemained() string {
	observeQuery(queryCalories)

	remained := c.remained()
	if remained.IsPositive() {
		return fmt.Sprintf(caloriesRemainedTemplate, remained)
	}
	return stopEatingMessage
}
