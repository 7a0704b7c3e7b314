package httpclient

import (
	"encoding/base64"
	"net/http"
)

// AuthType identifies which credential shape a client was built with.
type AuthType int

const (
	// AuthNone sends no Authorization header; the service rejects the call.
	AuthNone AuthType = iota
	// AuthBasic uses a username and password.
	AuthBasic
	// AuthAccount uses an account id and license key.
	AuthAccount
	// AuthBearer uses an OAuth bearer token.
	AuthBearer
)

// String returns the auth type name.
func (t AuthType) String() string {
	switch t {
	case AuthBasic:
		return "basic"
	case AuthAccount:
		return "account"
	case AuthBearer:
		return "bearer"
	default:
		return "none"
	}
}

// Credentials holds exactly one credential shape. Build it with BasicAuth,
// AccountAuth or BearerAuth; the zero value carries no credentials.
type Credentials struct {
	typ    AuthType
	first  string
	second string
}

// BasicAuth creates username/password credentials.
func BasicAuth(username, password string) Credentials {
	return Credentials{typ: AuthBasic, first: username, second: password}
}

// AccountAuth creates account id/license key credentials.
func AccountAuth(accountID, licenseKey string) Credentials {
	return Credentials{typ: AuthAccount, first: accountID, second: licenseKey}
}

// BearerAuth creates bearer token credentials.
func BearerAuth(token string) Credentials {
	return Credentials{typ: AuthBearer, first: token}
}

// Type returns the credential shape.
func (c Credentials) Type() AuthType {
	return c.typ
}

// Header returns the Authorization header value, or "" for AuthNone.
// Values are encoded as given; nothing is checked locally.
func (c Credentials) Header() string {
	switch c.typ {
	case AuthBasic, AuthAccount:
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.first+":"+c.second))
	case AuthBearer:
		return "Bearer " + c.first
	default:
		return ""
	}
}

// String hides the secret part of the credentials.
func (c Credentials) String() string {
	switch c.typ {
	case AuthBasic, AuthAccount:
		return c.typ.String() + "(" + c.first + ":***)"
	case AuthBearer:
		return "bearer(***)"
	default:
		return "none"
	}
}

// apply sets the Authorization header on h.
func (c Credentials) apply(h http.Header) {
	if v := c.Header(); v != "" {
		h.Set("Authorization", v)
	}
}
