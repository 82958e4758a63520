package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}
	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s port invalid", name)
	}
	return nil
}

// ValidatePoolSize checks the open/idle connection limits
func ValidatePoolSize(maxOpen, maxIdle int) error {
	if maxOpen < 1 {
		return fmt.Errorf("database max open connections must be positive")
	}
	if maxIdle < 0 {
		return fmt.Errorf("database max idle connections cannot be negative")
	}
	if maxIdle > maxOpen {
		return fmt.Errorf("database max idle connections (%d) exceed max open (%d)", maxIdle, maxOpen)
	}
	return nil
}
