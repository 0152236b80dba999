// Package errors defines the coded error type carried out of every
// fallible boundary operation.
//
// Each error pairs a short machine-readable code with a human-readable
// message and, optionally, an underlying cause. A failing call produces
// exactly one error and performs no other side effects; a successful call
// returns nil. Codes form a closed vocabulary so callers in any host
// language can branch on them without parsing messages.
package errors
