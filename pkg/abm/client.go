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

// Package abm is a client for the Apple Business Manager API: OAuth2
// client-credentials authentication with an ES256 client assertion, the
// paginated device inventory, and per-device coverage lookups.
package abm

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetyard/warrantysync/pkg/models"
)

const defaultHTTPTimeout = 30 * time.Second

// Client talks to the Apple Business Manager API. It implements
// TokenProvider, DeviceFetcher, and CoverageFetcher.
type Client struct {
	config     *models.Config
	httpClient HTTPClient
	signer     *Signer
	logger     zerolog.Logger
}

// NewClient builds a Client from the run configuration, loading and checking
// the private key up front so credential problems surface before any network
// call.
func NewClient(cfg *models.Config, log zerolog.Logger) (*Client, error) {
	signer, err := NewSigner(cfg.PrivateKeyPath, cfg.ClientID, cfg.KeyID, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		signer:     signer,
		logger:     log,
	}, nil
}

// clean normalizes attribute values the API serializes oddly: absent fields
// must come out as empty strings, never the literal "null".
func clean(s string) string {
	if s == "null" {
		return ""
	}

	return s
}
