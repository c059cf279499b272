// Package server composes and runs the random service process boundary.
//
// It owns the single Generator for the process, registers RandomService and
// the gRPC health service, and stops gracefully when its context ends.
package server
