package util

// PtrOrNil returns nil for the zero value of T and a pointer otherwise, so
// an unset field is left out of the query string or JSON body.
func PtrOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
