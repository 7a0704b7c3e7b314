package avatax

import (
	"context"

	"github.com/kbukum/avatax/httpclient/rest"
)

// PingResult reports service reachability and who the credentials belong to.
type PingResult struct {
	Version                string `json:"version,omitempty"`
	Authenticated          bool   `json:"authenticated"`
	AuthenticationType     string `json:"authenticationType,omitempty"`
	AuthenticatedUserName  string `json:"authenticatedUserName,omitempty"`
	AuthenticatedUserID    int64  `json:"authenticatedUserId,omitempty"`
	AuthenticatedAccountID int64  `json:"authenticatedAccountId,omitempty"`
	CRMID                  string `json:"crmid,omitempty"`
}

// Ping tests connectivity and reports whether the credentials were
// accepted. It never fails on bad credentials; Authenticated is false.
func (c *Client) Ping(ctx context.Context) (*PingResult, error) {
	return data(rest.Get[PingResult](ctx, c.rest, apiPrefix+"/utilities/ping"))
}
