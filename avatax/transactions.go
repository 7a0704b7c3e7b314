package avatax

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/httpclient/rest"
)

// DocumentType is the kind of transaction.
type DocumentType string

const (
	DocumentSalesOrder      DocumentType = "SalesOrder"
	DocumentSalesInvoice    DocumentType = "SalesInvoice"
	DocumentPurchaseOrder   DocumentType = "PurchaseOrder"
	DocumentPurchaseInvoice DocumentType = "PurchaseInvoice"
	DocumentReturnOrder     DocumentType = "ReturnOrder"
	DocumentReturnInvoice   DocumentType = "ReturnInvoice"
	DocumentAny             DocumentType = "Any"
)

// VoidReason explains why a transaction is voided.
type VoidReason string

const (
	VoidUnspecified         VoidReason = "Unspecified"
	VoidPostFailed          VoidReason = "PostFailed"
	VoidDocDeleted          VoidReason = "DocDeleted"
	VoidDocVoided           VoidReason = "DocVoided"
	VoidAdjustmentCancelled VoidReason = "AdjustmentCancelled"
)

const dateLayout = "2006-01-02"

// Date is a calendar date, "2006-01-02" on the wire.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d in UTC.
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts a plain date or a full timestamp.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{t}
			return nil
		}
	}
	return fmt.Errorf("avatax: invalid date %q", s)
}

// AddressLocation is an address, optionally identified by a location code.
type AddressLocation struct {
	AddressInfo
	LocationCode string `json:"locationCode,omitempty"`
}

// Addresses holds the addresses of a transaction or line.
type Addresses struct {
	SingleLocation         *AddressLocation `json:"singleLocation,omitempty"`
	ShipFrom               *AddressLocation `json:"shipFrom,omitempty"`
	ShipTo                 *AddressLocation `json:"shipTo,omitempty"`
	PointOfOrderOrigin     *AddressLocation `json:"pointOfOrderOrigin,omitempty"`
	PointOfOrderAcceptance *AddressLocation `json:"pointOfOrderAcceptance,omitempty"`
}

// LineItem is one line of a transaction to create.
type LineItem struct {
	Number      string     `json:"number,omitempty"`
	Quantity    float64    `json:"quantity,omitempty"`
	Amount      float64    `json:"amount"`
	Addresses   *Addresses `json:"addresses,omitempty"`
	TaxCode     string     `json:"taxCode,omitempty"`
	ItemCode    string     `json:"itemCode,omitempty"`
	Description string     `json:"description,omitempty"`
	TaxIncluded *bool      `json:"taxIncluded,omitempty"`
}

// CreateTransaction is the body of a create transaction call.
type CreateTransaction struct {
	Code            string       `json:"code,omitempty"`
	Type            DocumentType `json:"type,omitempty"`
	CompanyCode     string       `json:"companyCode,omitempty"`
	Date            Date         `json:"date"`
	CustomerCode    string       `json:"customerCode"`
	PurchaseOrderNo string       `json:"purchaseOrderNo,omitempty"`
	Addresses       *Addresses   `json:"addresses,omitempty"`
	Lines           []LineItem   `json:"lines"`
	Commit          *bool        `json:"commit,omitempty"`
	CurrencyCode    string       `json:"currencyCode,omitempty"`
	Description     string       `json:"description,omitempty"`
}

// TransactionLineDetail is the tax of one jurisdiction on one line.
type TransactionLineDetail struct {
	JurisName string  `json:"jurisName,omitempty"`
	JurisType string  `json:"jurisType,omitempty"`
	TaxName   string  `json:"taxName,omitempty"`
	Rate      float64 `json:"rate"`
	Tax       float64 `json:"tax"`
}

// TransactionLine is one calculated line.
type TransactionLine struct {
	ID            int64                   `json:"id,omitempty"`
	LineNumber    string                  `json:"lineNumber,omitempty"`
	LineAmount    float64                 `json:"lineAmount"`
	TaxableAmount float64                 `json:"taxableAmount"`
	Tax           float64                 `json:"tax"`
	TaxCode       string                  `json:"taxCode,omitempty"`
	Details       []TransactionLineDetail `json:"details,omitempty"`
}

// TransactionSummary is the tax of one jurisdiction across the document.
type TransactionSummary struct {
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"region,omitempty"`
	JurisType string  `json:"jurisType,omitempty"`
	JurisName string  `json:"jurisName,omitempty"`
	TaxName   string  `json:"taxName,omitempty"`
	Rate      float64 `json:"rate"`
	Tax       float64 `json:"tax"`
	Taxable   float64 `json:"taxable"`
}

// Transaction is a calculated transaction.
type Transaction struct {
	ID           int64                `json:"id,omitempty"`
	Code         string               `json:"code,omitempty"`
	CompanyID    int64                `json:"companyId,omitempty"`
	Date         Date                 `json:"date"`
	Status       string               `json:"status,omitempty"`
	Type         DocumentType         `json:"type,omitempty"`
	CustomerCode string               `json:"customerCode,omitempty"`
	TotalAmount  float64              `json:"totalAmount"`
	TotalTax     float64              `json:"totalTax"`
	TotalTaxable float64              `json:"totalTaxable"`
	TotalExempt  float64              `json:"totalExempt"`
	Lines        []TransactionLine    `json:"lines,omitempty"`
	Summary      []TransactionSummary `json:"summary,omitempty"`
	Messages     []Message            `json:"messages,omitempty"`
}

// VoidTransactionRequest is the body of a void call.
type VoidTransactionRequest struct {
	Code VoidReason `json:"code"`
}

// CreateTransaction calculates tax on a new transaction. include lists
// optional result sections, e.g. "Lines,Summary".
func (c *Client) CreateTransaction(ctx context.Context, model CreateTransaction, include string) (*Transaction, error) {
	return data(rest.Post[Transaction](ctx, c.rest, apiPrefix+"/transactions/create", model,
		rest.WithQuery(httpclient.Param("$include", include))))
}

// VoidTransaction voids a transaction by company and transaction code. An
// empty documentType lets AvaTax default to SalesInvoice.
func (c *Client) VoidTransaction(ctx context.Context, companyCode, transactionCode string, documentType DocumentType, req VoidTransactionRequest) (*Transaction, error) {
	return data(rest.Post[Transaction](ctx, c.rest, transactionPath(companyCode, transactionCode, "void"), req,
		rest.WithQuery(httpclient.Param("documentType", documentType))))
}
