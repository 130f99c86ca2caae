package main

import (
	"os"

	"go.uber.org/zap"
	"max.ks1230/daily-calculator/internal/logger"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("calculator failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
