// Package main is the entry point of the demonstration binary
package main

import (
	"flag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tecu23/chess-pieces/internal/demo"
	"github.com/tecu23/chess-pieces/pkg/config"
)

func main() {
	cfg := config.Load()

	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	scenario := flag.String(
		"scenario",
		cfg.Scenario,
		"run a single scenario (creation, movement, polymorphism, copying, counters, queen, miniboard)",
	)
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debug)
	defer logger.Sync()

	runner := demo.NewRunner(logger)

	var err error
	if *scenario != "" {
		err = runner.RunNamed(*scenario)
	} else {
		err = runner.RunAll()
	}
	if err != nil {
		logger.Fatal("demonstration failed", zap.Error(err))
	}

	logger.Info("all scenarios passed")
}

func initLogger(debug bool) *zap.Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	return logger
}
