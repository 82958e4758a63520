package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envPaths are tried in order; the first existing file wins
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads variables from the first .env file found. A missing file is
// not an error since the environment may be set by the container runtime.
// Variables already present in the environment are never overwritten.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}
