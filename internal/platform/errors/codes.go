// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Random errors
	CodeRandomInvalidWordCount Code = "RANDOM_INVALID_WORD_COUNT"
	CodeRandomUnknownSource    Code = "RANDOM_UNKNOWN_SOURCE"

	// Host errors
	CodeHostOutOfMemory    Code = "HOST_OUT_OF_MEMORY"
	CodeHostInvalidRecords Code = "HOST_INVALID_RECORDS"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRandomInvalidWordCount,
		CodeRandomUnknownSource,
		CodeHostInvalidRecords:
		return codes.InvalidArgument

	// ResourceExhausted - host limits
	case CodeHostOutOfMemory:
		return codes.ResourceExhausted

	default:
		return codes.Internal
	}
}
