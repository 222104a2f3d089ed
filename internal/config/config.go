// Package config provides environment loading and Viper-based hierarchical
// configuration for the ETL.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists, looking
// in the working directory and then its parent.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			workDir, err := os.Getwd()
			if err == nil {
				parentEnvFile := filepath.Join(filepath.Dir(workDir), ".env")
				if _, err := os.Stat(parentEnvFile); err == nil {
					envFile = parentEnvFile
				}
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.Debugf("No .env file loaded: %v", err)
		} else {
			log.Infof("Environment variables loaded from %s", envFile)
		}
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
