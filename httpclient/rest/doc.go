// Package rest adds typed helpers and pagination on top of httpclient.
//
//	c := rest.NewFromClient(client)
//
//	company, err := rest.Get[Company](ctx, c, "/api/v2/companies/123")
//
//	page, err := rest.List[Company](ctx, c, "/api/v2/companies",
//	    rest.ListOptions{Filter: "isActive eq true", Top: 50})
//	for page != nil {
//	    consume(page.Value)
//	    page, err = rest.Next(ctx, c, page)
//	}
//
// Every error returned is an *errors.AvalaraError.
package rest
