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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetyard/warrantysync/pkg/models"
)

func TestResolveCoverage(t *testing.T) {
	limitedExpired := models.CoverageEntry{
		Description: "Limited Warranty",
		Status:      "EXPIRED",
		EndDateTime: "2024-03-01T00:00:00Z",
	}
	limitedActive := models.CoverageEntry{
		Description: "Limited Warranty",
		Status:      "ACTIVE",
		EndDateTime: "2026-03-01T00:00:00Z",
	}
	appleCareActive := models.CoverageEntry{
		Description:     "AppleCare+ for Mac",
		Status:          "ACTIVE",
		EndDateTime:     "2027-06-15T00:00:00Z",
		AgreementNumber: "AC1000001",
	}
	appleCareExpired := models.CoverageEntry{
		Description:     "AppleCare Protection Plan",
		Status:          "EXPIRED",
		EndDateTime:     "2023-01-20T00:00:00Z",
		AgreementNumber: "AC9000009",
	}

	tests := []struct {
		name    string
		entries []models.CoverageEntry
		want    models.CoverageSummary
	}{
		{
			name:    "active plan wins over limited warranty",
			entries: []models.CoverageEntry{limitedExpired, appleCareActive},
			want: models.CoverageSummary{
				WarrantyExpires: "2027-06-15",
				AppleCareID:     "AC1000001",
			},
		},
		{
			name:    "active plan wins regardless of position",
			entries: []models.CoverageEntry{appleCareExpired, limitedActive, appleCareActive},
			want: models.CoverageSummary{
				WarrantyExpires: "2027-06-15",
				AppleCareID:     "AC1000001",
			},
		},
		{
			name:    "falls back to limited warranty without active plan",
			entries: []models.CoverageEntry{limitedActive, appleCareExpired},
			want: models.CoverageSummary{
				WarrantyExpires: "2026-03-01",
				AppleCareID:     "AC9000009",
			},
		},
		{
			name:    "limited warranty only",
			entries: []models.CoverageEntry{limitedExpired},
			want: models.CoverageSummary{
				WarrantyExpires: "2024-03-01",
			},
		},
		{
			name:    "no coverage entries",
			entries: nil,
			want:    models.CoverageSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCoverage(tt.entries))
		})
	}
}

func TestFetchCoverage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orgDevices/C02ABC123/coverages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "cov-1", "attributes": {
					"description": "Limited Warranty",
					"status": "EXPIRED",
					"endDateTime": "2024-03-01T00:00:00Z"
				}},
				{"id": "cov-2", "attributes": {
					"description": "AppleCare+ for Mac",
					"status": "ACTIVE",
					"endDateTime": "2027-06-15T00:00:00Z",
					"agreementNumber": "AC1000001"
				}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, server.URL)

	entries, err := client.FetchCoverage(context.Background(), "test-token", "C02ABC123")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Limited Warranty", entries[0].Description)
	assert.Equal(t, "AC1000001", entries[1].AgreementNumber)
}

func TestFetchCoverageNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, server.URL)

	_, err := client.FetchCoverage(context.Background(), "test-token", "MISSING01")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
}
