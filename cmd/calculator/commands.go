package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"max.ks1230/daily-calculator/internal/config"
	"max.ks1230/daily-calculator/internal/entity/record"
	"max.ks1230/daily-calculator/internal/logger"
	"max.ks1230/daily-calculator/internal/model/calculator"
)

// clock dates the sample records and defines today for the calculators.
var clock = time.Now

var (
	flagConfig   string
	flagLimit    float64
	flagCurrency string
)

var rootCmd = &cobra.Command{
	Use:           "calculator",
	Short:         "Daily cash and calories calculator",
	Long:          "Adds a few sample records and prints what is left of today's limit.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCash,
}

var cashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Print today's cash remainder",
	RunE:  runCash,
}

var caloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Print today's calories remainder",
	RunE:  runCalories,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultFile, "Path to yaml config")
	rootCmd.PersistentFlags().Float64VarP(&flagLimit, "limit", "l", 0, "Daily limit, overrides config")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency code: rub, usd or eur")

	rootCmd.AddCommand(cashCmd, caloriesCmd)
}

func loadConfig() (*config.Service, error) {
	conf, err := config.New(flagConfig)
	if err == nil {
		return conf, nil
	}
	if _, statErr := os.Stat(flagConfig); os.IsNotExist(statErr) {
		logger.Info("config file not found, using defaults", zap.String("path", flagConfig))
		return config.Default(), nil
	}
	return nil, errors.Wrap(err, "init config")
}

func limitOr(cmd *cobra.Command, def decimal.Decimal) decimal.Decimal {
	if cmd.Flags().Changed("limit") {
		return decimal.NewFromFloat(flagLimit)
	}
	return def
}

// addSampleRecords adds two records for today and one from the past.
func addSampleRecords(calc *calculator.Calculator) error {
	today := clock()
	calc.AddRecord(record.NewWithDate(decimal.NewFromInt(145), "кофе", today))
	calc.AddRecord(record.NewWithDate(decimal.NewFromInt(300), "Серёге за обед", today))

	rec, err := record.NewWithDateString(decimal.NewFromInt(3000), "бар в Танин др", "29.04.2020")
	if err != nil {
		return errors.Wrap(err, "sample record")
	}
	calc.AddRecord(rec)
	return nil
}

func runCash(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	code := flagCurrency
	if code == "" {
		code = conf.App().Currency()
	}

	calc := calculator.NewCash(limitOr(cmd, conf.App().CashLimit()), calculator.WithClock(clock))
	if err = addSampleRecords(calc.Calculator); err != nil {
		return err
	}

	msg, err := calc.TodayCashRemained(code)
	if err != nil {
		return errors.Wrap(err, "cash remained")
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runCalories(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	calc := calculator.NewCalories(limitOr(cmd, conf.App().CaloriesLimit()), calculator.WithClock(clock))
	if err = addSampleRecords(calc.Calculator); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), calc.CaloriesRemained())
	return nil
}
