package abm

// AccessTokenResponse represents the OAuth2 token endpoint response.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// OrgDeviceAttributes are the device attributes extracted from the inventory
// listing. Fields the API omits decode to empty strings.
type OrgDeviceAttributes struct {
	SerialNumber       string `json:"serialNumber"`
	ProductFamily      string `json:"productFamily"`
	OrderNumber        string `json:"orderNumber"`
	PurchaseSourceType string `json:"purchaseSourceType"`
	OrderDateTime      string `json:"orderDateTime"`
}

// OrgDevice is one element of a device listing page.
type OrgDevice struct {
	ID         string              `json:"id"`
	Attributes OrgDeviceAttributes `json:"attributes"`
}

// OrgDevicesResponse is one page of the device listing. An absent or empty
// nextCursor marks the last page.
type OrgDevicesResponse struct {
	Data []OrgDevice `json:"data"`
	Meta struct {
		Paging struct {
			NextCursor string `json:"nextCursor"`
		} `json:"paging"`
	} `json:"meta"`
}

// CoverageRecord is one element of a device's coverage collection.
type CoverageRecord struct {
	ID         string `json:"id"`
	Attributes struct {
		Description     string `json:"description"`
		Status          string `json:"status"`
		EndDateTime     string `json:"endDateTime"`
		AgreementNumber string `json:"agreementNumber"`
	} `json:"attributes"`
}

// CoverageResponse is the per-device coverage endpoint response.
type CoverageResponse struct {
	Data []CoverageRecord `json:"data"`
}
