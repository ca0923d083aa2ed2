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

func TestFetchDevicePagePagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orgDevices", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")

		if r.URL.Query().Get("cursor") == "" {
			_, _ = w.Write([]byte(`{
				"data": [
					{"id": "C02ABC123", "attributes": {
						"serialNumber": "C02ABC123",
						"productFamily": "Mac",
						"orderNumber": "PO-1001",
						"purchaseSourceType": "RESELLER",
						"orderDateTime": "2024-05-01T10:15:00Z"
					}},
					{"id": "DMPXYZ789", "attributes": {
						"serialNumber": "DMPXYZ789",
						"productFamily": "iPad"
					}}
				],
				"meta": {"paging": {"nextCursor": "cursor-2"}}
			}`))

			return
		}

		assert.Equal(t, "cursor-2", r.URL.Query().Get("cursor"))
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "F9FQRS456", "attributes": {
					"serialNumber": "F9FQRS456",
					"productFamily": "iPhone",
					"orderNumber": null
				}}
			],
			"meta": {"paging": {}}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, server.URL)
	ctx := context.Background()

	first, err := client.FetchDevicePage(ctx, "test-token", "")
	require.NoError(t, err)
	require.Len(t, first.Data, 2)
	assert.Equal(t, "cursor-2", first.Meta.Paging.NextCursor)

	device := first.Data[0].Model()
	assert.Equal(t, models.Device{
		SerialNumber:       "C02ABC123",
		ProductFamily:      "Mac",
		OrderNumber:        "PO-1001",
		PurchaseSourceType: "RESELLER",
		OrderDateTime:      "2024-05-01T10:15:00Z",
	}, device)

	// Omitted optional attributes decode to empty strings.
	sparse := first.Data[1].Model()
	assert.Equal(t, "DMPXYZ789", sparse.SerialNumber)
	assert.Empty(t, sparse.OrderNumber)
	assert.Empty(t, sparse.PurchaseSourceType)
	assert.Empty(t, sparse.OrderDateTime)

	second, err := client.FetchDevicePage(ctx, "test-token", first.Meta.Paging.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Data, 1)
	assert.Empty(t, second.Meta.Paging.NextCursor)
}

func TestFetchDevicePageNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream failure"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, server.URL)

	_, err := client.FetchDevicePage(context.Background(), "test-token", "")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
	assert.Contains(t, err.Error(), "500")
}

func TestOrgDeviceModelNormalizesNullLiterals(t *testing.T) {
	d := OrgDevice{ID: "SER123"}
	d.Attributes.SerialNumber = "SER123"
	d.Attributes.ProductFamily = "Mac"
	d.Attributes.OrderNumber = "null"
	d.Attributes.PurchaseSourceType = "null"
	d.Attributes.OrderDateTime = "null"

	device := d.Model()
	assert.Empty(t, device.OrderNumber)
	assert.Empty(t, device.PurchaseSourceType)
	assert.Empty(t, device.OrderDateTime)
}

func TestOrgDeviceModelFallsBackToID(t *testing.T) {
	d := OrgDevice{ID: "FROMID001"}
	d.Attributes.ProductFamily = "Mac"

	assert.Equal(t, "FROMID001", d.Model().SerialNumber)
}
