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

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `json:"name"`
	Count int    `json:"count"`

	validateErr error
}

func (c *testConfig) Validate() error {
	return c.validateErr
}

func TestLoadReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"sync","count":3}`), 0o644))

	var cfg testConfig

	require.NoError(t, NewConfig().Load(context.Background(), path, &cfg))
	assert.Equal(t, "sync", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig

	err := NewConfig().Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"), &cfg)
	require.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	var cfg testConfig

	err := NewConfig().Load(context.Background(), path, &cfg)
	require.Error(t, err)
}

func TestLoadAndValidateRunsValidator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"sync"}`), 0o644))

	errBad := errors.New("bad config")
	cfg := testConfig{validateErr: errBad}

	err := NewConfig().LoadAndValidate(context.Background(), path, &cfg)
	require.ErrorIs(t, err, errBad)
}

func TestValidateConfigSkipsNonValidators(t *testing.T) {
	type plain struct{ Name string }

	require.NoError(t, ValidateConfig(&plain{}))
}
