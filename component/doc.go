// Package component defines the lifecycle contract (Start, Stop, Health)
// shared by long-lived dependencies and a Registry that starts them in
// registration order and stops them in reverse.
package component
