package rest

import (
	"context"
	"net/http"

	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/util"
)

// ListOptions are the standard query options of AvaTax list endpoints.
// Zero values are left off the URL.
type ListOptions struct {
	Filter  string
	Include string
	Top     int
	Skip    int
	OrderBy string
}

// Params renders the options as $-prefixed query parameters.
func (o ListOptions) Params() []httpclient.QueryParam {
	return []httpclient.QueryParam{
		httpclient.Param("$filter", o.Filter),
		httpclient.Param("$include", o.Include),
		httpclient.Param("$top", util.PtrOrNil(max(o.Top, 0))),
		httpclient.Param("$skip", util.PtrOrNil(max(o.Skip, 0))),
		httpclient.Param("$orderBy", o.OrderBy),
	}
}

// List fetches the first page of a list endpoint.
func List[T any](ctx context.Context, c *Client, path string, lo ListOptions, opts ...RequestOption) (*FetchResult[T], error) {
	return ListWith[T](ctx, c, path, lo, nil, opts...)
}

// ListWith is List with a custom element converter. Pages fetched through
// Next and ListAll keep using it.
func ListWith[T any](ctx context.Context, c *Client, path string, lo ListOptions, convert Converter[T], opts ...RequestOption) (*FetchResult[T], error) {
	opts = append([]RequestOption{WithQuery(lo.Params()...)}, opts...)
	return fetch(ctx, c, path, convert, opts...)
}

// Next follows page.NextLink, relative or absolute. It returns nil, nil on
// the last page.
func Next[T any](ctx context.Context, c *Client, page *FetchResult[T], opts ...RequestOption) (*FetchResult[T], error) {
	if !page.HasNext() {
		return nil, nil
	}
	return fetch(ctx, c, page.NextLink, page.convert, opts...)
}

// ListAll walks every page sequentially and returns all records. It stops
// early if the service repeats a continuation link.
func ListAll[T any](ctx context.Context, c *Client, path string, lo ListOptions, opts ...RequestOption) ([]T, error) {
	page, err := List[T](ctx, c, path, lo, opts...)
	if err != nil {
		return nil, err
	}

	all := make([]T, 0, max(page.RecordCount, len(page.Value)))
	seen := make(map[string]struct{})
	for page != nil {
		all = append(all, page.Value...)
		if _, ok := seen[page.NextLink]; ok {
			break
		}
		seen[page.NextLink] = struct{}{}
		if page, err = Next(ctx, c, page, opts...); err != nil {
			return nil, err
		}
	}
	return all, nil
}

func fetch[T any](ctx context.Context, c *Client, path string, convert Converter[T], opts ...RequestOption) (*FetchResult[T], error) {
	var res *FetchResult[T]
	decode := func(b []byte) error {
		var err error
		res, err = DecodeFetchResult(b, convert)
		return err
	}
	if _, err := send(ctx, c, http.MethodGet, path, nil, decode, opts...); err != nil {
		return nil, err
	}
	return res, nil
}
