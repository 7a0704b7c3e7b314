// Package httpclient executes calls against the AvaTax REST API.
//
// A Client owns its configuration, credentials and logger. Each call to Do
// builds the URL, attaches the fixed headers (Accept, Content-Type,
// Authorization and X-Avalara-Client), sends the request under the
// configured deadline and classifies the outcome. Failures are always an
// *errors.AvalaraError:
//
//   - a JSON body with a top-level "error" field, whatever the status
//   - a transport failure (NetworkFailure)
//   - an elapsed deadline (RequestTimeout)
//   - a body that is not JSON, or that Request.Decode rejects (ParseFailure)
//
// Basic usage:
//
//	client, err := httpclient.New(httpclient.Config{
//	    AppName:     "billing",
//	    AppVersion:  "1.4.2",
//	    Environment: httpclient.EnvSandbox,
//	    Timeout:     30 * time.Second,
//	}, httpclient.AccountAuth("1100012345", licenseKey))
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/api/v2/addresses/resolve",
//	    Query: []httpclient.QueryParam{
//	        httpclient.Param("line1", "2000 Main Street"),
//	        httpclient.Param("postalCode", "92614"),
//	    },
//	})
//
// The rest subpackage decodes responses into typed values and walks
// paginated list endpoints.
package httpclient
