package avatax

import (
	"context"

	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/httpclient/rest"
)

// TextCase selects the casing of resolved addresses.
type TextCase string

const (
	TextCaseUpper TextCase = "Upper"
	TextCaseMixed TextCase = "Mixed"
)

// AddressValidationInfo is an address to resolve.
type AddressValidationInfo struct {
	Line1      string   `json:"line1,omitempty"`
	Line2      string   `json:"line2,omitempty"`
	Line3      string   `json:"line3,omitempty"`
	City       string   `json:"city,omitempty"`
	Region     string   `json:"region,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
	TextCase   TextCase `json:"textCase,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// Params returns the address as unprefixed query parameters. Empty fields
// are dropped when the URL is built.
func (a AddressValidationInfo) Params() []httpclient.QueryParam {
	return []httpclient.QueryParam{
		httpclient.Param("line1", a.Line1),
		httpclient.Param("line2", a.Line2),
		httpclient.Param("line3", a.Line3),
		httpclient.Param("city", a.City),
		httpclient.Param("region", a.Region),
		httpclient.Param("postalCode", a.PostalCode),
		httpclient.Param("country", a.Country),
		httpclient.Param("textCase", a.TextCase),
		httpclient.Param("latitude", a.Latitude),
		httpclient.Param("longitude", a.Longitude),
	}
}

// AddressInfo is a postal address.
type AddressInfo struct {
	Line1      string   `json:"line1,omitempty"`
	Line2      string   `json:"line2,omitempty"`
	Line3      string   `json:"line3,omitempty"`
	City       string   `json:"city,omitempty"`
	Region     string   `json:"region,omitempty"`
	Country    string   `json:"country,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// ValidatedAddress is one candidate returned by address resolution.
type ValidatedAddress struct {
	AddressInfo
	AddressType string `json:"addressType,omitempty"`
}

// Coordinate is a geocoded location.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TaxAuthority is a jurisdiction that applies to an address.
type TaxAuthority struct {
	AvalaraID        string `json:"avalaraId,omitempty"`
	JurisdictionName string `json:"jurisdictionName,omitempty"`
	JurisdictionType string `json:"jurisdictionType,omitempty"`
	SignatureCode    string `json:"signatureCode,omitempty"`
}

// Message is an informational or warning message attached to a result.
type Message struct {
	Summary  string `json:"summary,omitempty"`
	Details  string `json:"details,omitempty"`
	RefersTo string `json:"refersTo,omitempty"`
	Severity string `json:"severity,omitempty"`
	Source   string `json:"source,omitempty"`
}

// AddressResolution is the result of resolving an address.
type AddressResolution struct {
	Address            AddressInfo        `json:"address"`
	ValidatedAddresses []ValidatedAddress `json:"validatedAddresses,omitempty"`
	Coordinates        *Coordinate        `json:"coordinates,omitempty"`
	ResolutionQuality  string             `json:"resolutionQuality,omitempty"`
	TaxAuthorities     []TaxAuthority     `json:"taxAuthorities,omitempty"`
	Messages           []Message          `json:"messages,omitempty"`
}

// ResolveAddress resolves an address passed as query parameters.
func (c *Client) ResolveAddress(ctx context.Context, addr AddressValidationInfo) (*AddressResolution, error) {
	return data(rest.Get[AddressResolution](ctx, c.rest, apiPrefix+"/addresses/resolve",
		rest.WithQuery(addr.Params()...)))
}

// ResolveAddressPost resolves an address passed as a JSON body.
func (c *Client) ResolveAddressPost(ctx context.Context, addr AddressValidationInfo) (*AddressResolution, error) {
	return data(rest.Post[AddressResolution](ctx, c.rest, apiPrefix+"/addresses/resolve", addr))
}
