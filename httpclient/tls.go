package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"github.com/kbukum/avatax/security"
)

// TLSConfig is an alias for the shared security TLS configuration.
// See security.TLSConfig for full documentation.
type TLSConfig = security.TLSConfig

const (
	h2ReadIdleTimeout = 30 * time.Second
	h2PingTimeout     = 15 * time.Second
)

// newTransport returns a clone of the default transport, or, when tlsCfg
// carries settings, a fresh transport using it with HTTP/2 configured
// explicitly (including connection health pings).
func newTransport(tlsCfg *TLSConfig) (*http.Transport, error) {
	built, err := tlsCfg.Build()
	if err != nil {
		return nil, err
	}
	if built == nil {
		return http.DefaultTransport.(*http.Transport).Clone(), nil
	}

	// a clone of the default transport already has HTTP/2 registered,
	// which ConfigureTransports rejects
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig:       built,
	}

	h2, err := http2.ConfigureTransports(transport)
	if err != nil {
		return nil, fmt.Errorf("httpclient: configure http2: %w", err)
	}
	h2.ReadIdleTimeout = h2ReadIdleTimeout
	h2.PingTimeout = h2PingTimeout
	return transport, nil
}
