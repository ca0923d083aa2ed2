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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fleetyard/warrantysync/pkg/models"
)

// FetchCoverage fetches the coverage entries attached to one device. Callers
// treat failures here as recoverable: the device's row is still written, just
// without warranty fields.
func (c *Client) FetchCoverage(ctx context.Context, accessToken, serial string) ([]models.CoverageEntry, error) {
	reqURL := fmt.Sprintf("%s/v1/orgDevices/%s/coverages", c.config.APIBaseURL, url.PathEscape(serial))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coverage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var covResp CoverageResponse

	if err := json.NewDecoder(resp.Body).Decode(&covResp); err != nil {
		return nil, fmt.Errorf("failed to parse coverage response: %w", err)
	}

	entries := make([]models.CoverageEntry, 0, len(covResp.Data))

	for i := range covResp.Data {
		attrs := &covResp.Data[i].Attributes
		entries = append(entries, models.CoverageEntry{
			Description:     clean(attrs.Description),
			Status:          clean(attrs.Status),
			EndDateTime:     clean(attrs.EndDateTime),
			AgreementNumber: clean(attrs.AgreementNumber),
		})
	}

	return entries, nil
}

// ResolveCoverage picks a single warranty expiration and coverage ID out of a
// device's coverage entries, which may overlap (an expired Limited Warranty
// alongside an active AppleCare plan is common).
//
// Warranty Expires: the first ACTIVE entry that is not the Limited Warranty
// wins; otherwise the first Limited Warranty entry; otherwise empty. Only the
// date portion is kept.
//
// AppleCare ID: among non-Limited-Warranty entries ordered ACTIVE first, the
// first entry's agreement number.
func ResolveCoverage(entries []models.CoverageEntry) models.CoverageSummary {
	var summary models.CoverageSummary

	var expires *models.CoverageEntry

	for i := range entries {
		e := &entries[i]
		if e.Description != models.LimitedWarrantyDescription && e.Status == models.CoverageStatusActive {
			expires = e
			break
		}
	}

	if expires == nil {
		for i := range entries {
			if entries[i].Description == models.LimitedWarrantyDescription {
				expires = &entries[i]
				break
			}
		}
	}

	if expires != nil {
		summary.WarrantyExpires = models.DateOnly(expires.EndDateTime)
	}

	var plan *models.CoverageEntry

	for i := range entries {
		e := &entries[i]
		if e.Description != models.LimitedWarrantyDescription && e.Status == models.CoverageStatusActive {
			plan = e
			break
		}
	}

	if plan == nil {
		for i := range entries {
			if entries[i].Description != models.LimitedWarrantyDescription {
				plan = &entries[i]
				break
			}
		}
	}

	if plan != nil {
		summary.AppleCareID = plan.AgreementNumber
	}

	return summary
}
