// Package security holds the TLS settings of the AvaTax transport: a custom
// CA bundle for TLS-intercepting proxies, an optional client certificate,
// and a minimum protocol version.
//
//	tls:
//	  ca_file: /etc/ssl/corp-proxy.pem
//	  min_version: "1.3"
package security
