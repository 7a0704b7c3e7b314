// Package util holds small generic helpers for building optional query
// parameters and model fields.
package util
