package config

import "github.com/shopspring/decimal"

type AppConfig struct {
	CashLimitValue     float64 `yaml:"cash-limit"`
	CaloriesLimitValue float64 `yaml:"calories-limit"`
	CurrencyName       string  `yaml:"currency"`
}

func (s *AppConfig) CashLimit() decimal.Decimal {
	return decimal.NewFromFloat(s.CashLimitValue)
}

func (s *AppConfig) CaloriesLimit() decimal.Decimal {
	return decimal.NewFromFloat(s.CaloriesLimitValue)
}

func (s *AppConfig) Currency() string {
	return s.CurrencyName
}
