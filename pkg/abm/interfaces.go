package abm

import (
	"context"
	"net/http"

	"github.com/fleetyard/warrantysync/pkg/models"
)

//go:generate mockgen -destination=mock_abm.go -package=abm github.com/fleetyard/warrantysync/pkg/abm HTTPClient,TokenProvider,DeviceFetcher,CoverageFetcher

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider defines the interface for obtaining access tokens.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// DeviceFetcher defines the interface for fetching device listing pages.
type DeviceFetcher interface {
	FetchDevicePage(ctx context.Context, accessToken, cursor string) (*OrgDevicesResponse, error)
}

// CoverageFetcher defines the interface for fetching a device's coverage
// entries.
type CoverageFetcher interface {
	FetchCoverage(ctx context.Context, accessToken, serial string) ([]models.CoverageEntry, error)
}
