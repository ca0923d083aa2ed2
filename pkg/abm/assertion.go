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

package abm

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// assertionAudience is the fixed audience claim the token service
	// expects in client assertions.
	assertionAudience = "https://account.apple.com/auth/oauth2/v2/token"

	// assertionLifetime is 180 days, the maximum the token service accepts.
	assertionLifetime = 180 * 24 * time.Hour
)

// Signer builds ES256 client assertions proving possession of the account's
// private key. The ES256 signing method emits the raw 64-byte r‖s signature
// the token service requires, with both integers zero-padded to the fixed
// P-256 field width.
type Signer struct {
	clientID string
	keyID    string
	key      *ecdsa.PrivateKey
	clock    Clock
}

// NewSigner loads the private key from keyPath and returns a Signer. Any
// problem with the key material is returned as an error; callers treat it as
// fatal.
func NewSigner(keyPath, clientID, keyID string, clock Clock) (*Signer, error) {
	key, err := loadPrivateKey(keyPath)
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = realClock{}
	}

	return &Signer{
		clientID: clientID,
		keyID:    keyID,
		key:      key,
		clock:    clock,
	}, nil
}

// ClientAssertion returns a signed compact JWT: sub/iss carry the client ID,
// the jti is a random lowercase UUID, and exp is 180 days out.
func (s *Signer) ClientAssertion() (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"sub": s.clientID,
		"aud": assertionAudience,
		"iat": now.Unix(),
		"exp": now.Add(assertionLifetime).Unix(),
		"jti": uuid.NewString(),
		"iss": s.clientID,
	})
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign client assertion: %w", err)
	}

	return signed, nil
}

// loadPrivateKey reads a PEM-encoded EC private key, accepting both SEC1
// ("EC PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") encodings.
func loadPrivateKey(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: %s", errNoPEMData, path)
	}

	var key *ecdsa.PrivateKey

	switch block.Type {
	case "EC PRIVATE KEY":
		key, err = x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse EC private key: %w", err)
		}
	default:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		ecKey, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", errNotECPrivateKey, parsed)
		}

		key = ecKey
	}

	if key.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: got %s", errUnsupportedCurve, key.Curve.Params().Name)
	}

	return key, nil
}
