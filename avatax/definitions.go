package avatax

import (
	"context"

	"github.com/kbukum/avatax/httpclient/rest"
)

// TaxCode is a product taxability code.
type TaxCode struct {
	ID            int64  `json:"id,omitempty"`
	CompanyID     int64  `json:"companyId,omitempty"`
	TaxCode       string `json:"taxCode"`
	TaxCodeTypeID string `json:"taxCodeTypeId,omitempty"`
	Description   string `json:"description,omitempty"`
	ParentTaxCode string `json:"parentTaxCode,omitempty"`
	IsPhysical    bool   `json:"isPhysical"`
	IsActive      bool   `json:"isActive"`
}

// ListTaxCodes returns the first page of the system tax code definitions.
func (c *Client) ListTaxCodes(ctx context.Context, lo rest.ListOptions) (*rest.FetchResult[TaxCode], error) {
	return rest.List[TaxCode](ctx, c.rest, apiPrefix+"/definitions/taxcodes", lo)
}
