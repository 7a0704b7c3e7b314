package httpclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"
)

const (
	// SandboxURL is the AvaTax sandbox host.
	SandboxURL = "https://sandbox-rest.avatax.com"
	// ProductionURL is the AvaTax production host.
	ProductionURL = "https://rest.avatax.com"

	// EnvSandbox selects SandboxURL.
	EnvSandbox = "sandbox"
	// EnvProduction selects ProductionURL. Any unrecognized value does too.
	EnvProduction = "production"
)

// QueryParam is one query parameter. Order is preserved on the wire.
type QueryParam struct {
	Key   string
	Value any
}

// Param creates a QueryParam.
func Param(key string, value any) QueryParam {
	return QueryParam{Key: key, Value: value}
}

// ResolveBaseURL maps an environment selector to a base URL: "sandbox" to
// the sandbox host, an http:// or https:// URL verbatim, anything else
// (including "") to production.
func ResolveBaseURL(env string) string {
	switch {
	case env == EnvSandbox:
		return SandboxURL
	case strings.HasPrefix(env, "http://"), strings.HasPrefix(env, "https://"):
		return env
	default:
		return ProductionURL
	}
}

// BuildURL returns basePath + relativeURL, followed by "?" and the encoded
// parameters if at least one survives filtering. Parameters whose value is
// nil, a nil pointer, an empty string or an empty slice are omitted.
func BuildURL(basePath, relativeURL string, params ...QueryParam) string {
	query := EncodeQuery(params)
	if query == "" {
		return basePath + relativeURL
	}
	sep := "?"
	if strings.Contains(relativeURL, "?") {
		sep = "&"
	}
	return basePath + relativeURL + sep + query
}

// EncodeQuery percent-encodes each retained key and value independently
// and joins the pairs with "&" in caller order.
func EncodeQuery(params []QueryParam) string {
	var b strings.Builder
	for _, p := range params {
		v, ok := formatValue(p.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.Key))
		b.WriteByte('=')
		b.WriteString(escape(v))
	}
	return b.String()
}

// componentUnescaper undoes the url.QueryEscape choices that differ from
// encodeURIComponent.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape encodes like encodeURIComponent: space is %20 rather than "+",
// and !'()* are left as is.
func escape(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// formatValue renders a parameter value. ok is false when the parameter
// must be dropped.
func formatValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case time.Time:
		if x.IsZero() {
			return "", false
		}
		return x.Format(time.RFC3339), true
	case fmt.Stringer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		s := x.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), rv.Len() > 0
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", false
		}
		parts := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if s, ok := formatValue(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}
