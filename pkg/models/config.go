/*
 * Copyright 2025 Fleetyard Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrMissingClientID      = errors.New("client_id is required")
	ErrMissingKeyID         = errors.New("key_id is required")
	ErrMissingPrivateKey    = errors.New("private_key_path is required")
	ErrPrivateKeyNotFound   = errors.New("private key file not found")
	ErrOutputDirNotFound    = errors.New("output directory not found")
	ErrOutputDirNotDir      = errors.New("output path is not a directory")
	ErrNegativeRequestDelay = errors.New("request_delay must not be negative")
)

const (
	defaultTokenURL     = "https://account.apple.com/auth/oauth2/token"
	defaultAPIBaseURL   = "https://api-business.apple.com"
	defaultComputerFile = "computers.csv"
	defaultMobileFile   = "mobile_devices.csv"
	defaultRequestDelay = Duration(1 * time.Second)

	outputExtension = ".csv"
)

// Duration wraps time.Duration to support JSON strings like "2s" as well as
// raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return ErrInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds everything a warranty sync run needs: API credentials, the
// endpoints to talk to, and where the two CSV outputs live.
type Config struct {
	PrivateKeyPath string   `json:"private_key_path"`
	ClientID       string   `json:"client_id"`
	KeyID          string   `json:"key_id"`
	TokenURL       string   `json:"token_url"`
	APIBaseURL     string   `json:"api_base_url"`
	OutputDir      string   `json:"output_dir"`
	ComputerFile   string   `json:"computer_file"`
	MobileFile     string   `json:"mobile_file"`
	RequestDelay   Duration `json:"request_delay"`
}

// Validate applies defaults and runs the preflight checks that must hold
// before any network call is made. Missing credentials, a missing key file,
// or a missing output directory are all fatal.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}

	if c.KeyID == "" {
		return ErrMissingKeyID
	}

	if c.PrivateKeyPath == "" {
		return ErrMissingPrivateKey
	}

	if _, err := os.Stat(c.PrivateKeyPath); err != nil {
		return fmt.Errorf("%w: %s", ErrPrivateKeyNotFound, c.PrivateKeyPath)
	}

	if c.TokenURL == "" {
		c.TokenURL = defaultTokenURL
	}

	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	info, err := os.Stat(c.OutputDir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputDirNotFound, c.OutputDir)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirNotDir, c.OutputDir)
	}

	if c.ComputerFile == "" {
		c.ComputerFile = defaultComputerFile
	}

	if c.MobileFile == "" {
		c.MobileFile = defaultMobileFile
	}

	c.ComputerFile = coerceExtension(c.ComputerFile)
	c.MobileFile = coerceExtension(c.MobileFile)

	if c.RequestDelay < 0 {
		return ErrNegativeRequestDelay
	}

	if c.RequestDelay == 0 {
		c.RequestDelay = defaultRequestDelay
	}

	return nil
}

// ComputerPath is the full path of the computer output file.
func (c *Config) ComputerPath() string {
	return filepath.Join(c.OutputDir, c.ComputerFile)
}

// MobilePath is the full path of the mobile device output file.
func (c *Config) MobilePath() string {
	return filepath.Join(c.OutputDir, c.MobileFile)
}

// coerceExtension forces output filenames to end in the import tool's
// expected extension.
func coerceExtension(name string) string {
	if strings.EqualFold(filepath.Ext(name), outputExtension) {
		return name
	}

	return name + outputExtension
}
