// Package avatax exposes a handful of AvaTax REST endpoints on top of the
// httpclient and rest packages: utilities, address resolution, companies,
// tax code definitions and transactions.
//
//	c, err := avatax.New(httpclient.Config{
//	    AppName:     "billing",
//	    AppVersion:  "1.4.2",
//	    Environment: httpclient.EnvSandbox,
//	}, httpclient.AccountAuth(accountID, licenseKey))
//
//	res, err := c.ResolveAddress(ctx, avatax.AddressValidationInfo{
//	    Line1:      "1510 Foster Circle",
//	    City:       "Illinois",
//	    Region:     "IL",
//	    PostalCode: "60102",
//	    Country:    "US",
//	})
package avatax
