// Package main provides the entry point for the finances-etl CLI application.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/categorize"
	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/root"
	rulescmd "github.com/hansinirajesh92/finances-tracker-dashboard/cmd/rules"
	"github.com/hansinirajesh92/finances-tracker-dashboard/cmd/run"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/config"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
)

func init() {
	// Load environment variables before any logging happens, then pin the
	// global log level so every logger created later honors it.
	loadEnvSilently()
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	root.Init()
	root.Cmd.AddCommand(run.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(rulescmd.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
