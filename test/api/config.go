/*
Copyright 2026 the Posts Verification Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public service the suites document.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	DefaultRequestTimeout = 30 * time.Second
)

// ErrInvalidBaseURL is returned when API_BASE_URL is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("invalid base URL")

type TestConfig struct {
	BaseURL         string
	RequestTimeout  time.Duration
	ResultsDir      string
	SkipIntegration bool
	ValidateSchema  bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if the configured base URL cannot be used.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", DefaultRequestTimeout),
		ResultsDir:      os.Getenv("ALLURE_RESULTS_DIR"),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		ValidateSchema:  getBoolWithDefault("VALIDATE_SCHEMA", true),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateBaseURL(config.BaseURL); err != nil {
		return nil, err
	}

	return config, nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// loadEnvFile loads ENV_FILE when set, otherwise the first .env found
// above the test packages.
func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api directory
		"../../../.env", // From test/api/suites directory
	}

	if path := os.Getenv("ENV_FILE"); path != "" {
		envPaths = []string{path}
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not finding a .env file is fine, CI sets the environment directly.
		return
	}

	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validateBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidBaseURL, baseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s: API_BASE_URL must be an absolute http(s) URL", ErrInvalidBaseURL, baseURL)
	}

	return nil
}
