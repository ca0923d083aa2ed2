package models

import "strings"

const (
	// ProductFamilyMac routes a device to the computer output; every other
	// product family goes to the mobile device output.
	ProductFamilyMac = "Mac"

	// CoverageStatusActive is the status value marking a coverage plan as
	// currently in force.
	CoverageStatusActive = "ACTIVE"

	// LimitedWarrantyDescription is the distinguished description of the
	// bundled hardware warranty, as opposed to AppleCare-type plans.
	LimitedWarrantyDescription = "Limited Warranty"
)

// Device is one entry from the organization's device inventory. Optional
// attributes are empty strings when the API omits them.
type Device struct {
	SerialNumber       string `json:"serialNumber"`
	ProductFamily      string `json:"productFamily"`
	OrderNumber        string `json:"orderNumber"`
	PurchaseSourceType string `json:"purchaseSourceType"`
	OrderDateTime      string `json:"orderDateTime"`
}

// CoverageEntry is one service or warranty plan attached to a device.
type CoverageEntry struct {
	Description     string `json:"description"`
	Status          string `json:"status"`
	EndDateTime     string `json:"endDateTime"`
	AgreementNumber string `json:"agreementNumber"`
}

// CoverageSummary is the resolved warranty state written to an output row.
type CoverageSummary struct {
	WarrantyExpires string
	AppleCareID     string
}

// DateOnly truncates an ISO-8601 timestamp at the time separator, keeping
// just the date portion. Values without a time portion pass through.
func DateOnly(s string) string {
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}

	return s
}
