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

// FetchDevicePage fetches a single page of the organization's device
// inventory. Pass an empty cursor for the first page; subsequent pages use
// the nextCursor value from the previous page's paging metadata.
func (c *Client) FetchDevicePage(ctx context.Context, accessToken, cursor string) (*OrgDevicesResponse, error) {
	reqURL := c.config.APIBaseURL + "/v1/orgDevices"
	if cursor != "" {
		reqURL += "?cursor=" + url.QueryEscape(cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("device listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(bodyBytes))
	}

	var page OrgDevicesResponse

	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to parse device listing: %w", err)
	}

	c.logger.Debug().
		Int("devices", len(page.Data)).
		Str("next_cursor", page.Meta.Paging.NextCursor).
		Msg("Fetched device listing page")

	return &page, nil
}

// Model converts an API device into the domain model, normalizing absent
// optional attributes to empty strings.
func (d *OrgDevice) Model() models.Device {
	serial := clean(d.Attributes.SerialNumber)
	if serial == "" {
		serial = clean(d.ID)
	}

	return models.Device{
		SerialNumber:       serial,
		ProductFamily:      clean(d.Attributes.ProductFamily),
		OrderNumber:        clean(d.Attributes.OrderNumber),
		PurchaseSourceType: clean(d.Attributes.PurchaseSourceType),
		OrderDateTime:      clean(d.Attributes.OrderDateTime),
	}
}
