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

import "errors"

var (
	errUnexpectedStatusCode = errors.New("unexpected status code")
	errMissingAccessToken   = errors.New("token response contains no access_token")
	errNoPEMData            = errors.New("no PEM block found in private key file")
	errNotECPrivateKey      = errors.New("private key is not an EC key")
	errUnsupportedCurve     = errors.New("private key must use the P-256 curve")
)
