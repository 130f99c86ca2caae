package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

const (
	defaultCashLimit     = 1000
	defaultCaloriesLimit = 2000
	defaultCurrency      = "eur"
)

type config struct {
	App AppConfig `yaml:"app"`
}

type Service struct {
	config config
}

// Default returns the configuration used when no file is present.
func Default() *Service {
	return &Service{config: config{App: AppConfig{
		CashLimitValue:     defaultCashLimit,
		CaloriesLimitValue: defaultCaloriesLimit,
		CurrencyName:       defaultCurrency,
	}}}
}

// New reads path on top of the defaults, so omitted keys keep their default values.
func New(path string) (*Service, error) {
	s := Default()

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}
