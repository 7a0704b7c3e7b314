package avatax

import (
	"context"
	"time"

	"github.com/kbukum/avatax/errors"
	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/httpclient/rest"
)

// Company is an AvaTax company.
type Company struct {
	ID               int64      `json:"id,omitempty"`
	AccountID        int64      `json:"accountId,omitempty"`
	ParentCompanyID  *int64     `json:"parentCompanyId,omitempty"`
	CompanyCode      string     `json:"companyCode,omitempty"`
	Name             string     `json:"name,omitempty"`
	IsDefault        bool       `json:"isDefault"`
	IsActive         bool       `json:"isActive"`
	TaxpayerIDNumber string     `json:"taxpayerIdNumber,omitempty"`
	DefaultCountry   string     `json:"defaultCountry,omitempty"`
	CreatedDate      *time.Time `json:"createdDate,omitempty"`
	ModifiedDate     *time.Time `json:"modifiedDate,omitempty"`
}

// QueryCompanies returns the first page of companies visible to the
// credentials.
func (c *Client) QueryCompanies(ctx context.Context, lo rest.ListOptions) (*rest.FetchResult[Company], error) {
	return rest.List[Company](ctx, c.rest, apiPrefix+"/companies", lo)
}

// QueryAllCompanies walks every page of QueryCompanies.
func (c *Client) QueryAllCompanies(ctx context.Context, lo rest.ListOptions) ([]Company, error) {
	return rest.ListAll[Company](ctx, c.rest, apiPrefix+"/companies", lo)
}

// GetCompany fetches one company. include lists child objects to expand,
// e.g. "Contacts,Items".
func (c *Client) GetCompany(ctx context.Context, id int64, include string) (*Company, error) {
	return data(rest.Get[Company](ctx, c.rest, companyPath(id),
		rest.WithQuery(httpclient.Param("$include", include))))
}

// DeleteCompany deletes a company and returns the messages AvaTax reports.
func (c *Client) DeleteCompany(ctx context.Context, id int64) ([]errors.ErrorDetail, error) {
	resp, err := rest.Delete[[]errors.ErrorDetail](ctx, c.rest, companyPath(id))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
