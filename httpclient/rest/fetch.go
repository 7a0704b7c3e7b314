package rest

import (
	"encoding/json"
	"fmt"
)

// Converter turns one raw element of a list envelope into T.
type Converter[T any] func(raw json.RawMessage) (T, error)

// JSONConverter decodes an element with encoding/json, applying T's own
// field tags and nested types.
func JSONConverter[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

// FetchResult is one page of a list endpoint.
type FetchResult[T any] struct {
	// RecordCount is the total number of records across all pages.
	RecordCount int `json:"@recordsetCount"`
	// Value holds the records on this page.
	Value []T `json:"value"`
	// NextLink is the continuation link, empty on the last page. It is
	// written as "nextLink"; AvaTax's "@nextLink" is accepted when decoding.
	NextLink string `json:"nextLink,omitempty"`

	convert Converter[T]
}

// HasNext reports whether another page is available.
func (r *FetchResult[T]) HasNext() bool {
	return r != nil && r.NextLink != ""
}

// UnmarshalJSON decodes the envelope with JSONConverter.
func (r *FetchResult[T]) UnmarshalJSON(data []byte) error {
	res, err := DecodeFetchResult[T](data, nil)
	if err != nil {
		return err
	}
	*r = *res
	return nil
}

type envelope struct {
	RecordCount  int               `json:"@recordsetCount"`
	Value        []json.RawMessage `json:"value"`
	NextLink     *string           `json:"@nextLink"`
	BareNextLink *string           `json:"nextLink"`
}

// DecodeFetchResult rebuilds a FetchResult from a list envelope. Each value
// element goes through convert (JSONConverter when nil); recordCount and
// nextLink are carried over unchanged. Both "@nextLink" and "nextLink" are
// accepted.
func DecodeFetchResult[T any](data []byte, convert Converter[T]) (*FetchResult[T], error) {
	if convert == nil {
		convert = JSONConverter[T]
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("rest: decode list envelope: %w", err)
	}

	res := &FetchResult[T]{
		RecordCount: env.RecordCount,
		Value:       make([]T, 0, len(env.Value)),
		convert:     convert,
	}
	switch {
	case env.NextLink != nil:
		res.NextLink = *env.NextLink
	case env.BareNextLink != nil:
		res.NextLink = *env.BareNextLink
	}

	for i, raw := range env.Value {
		v, err := convert(raw)
		if err != nil {
			return nil, fmt.Errorf("rest: convert value[%d]: %w", i, err)
		}
		res.Value = append(res.Value, v)
	}
	return res, nil
}
