// Package random hosts the VM random number source as a network service.
//
// One process owns one Generator. Remote VMs switch its mode with SetSeed and
// draw values with Next, Range, or ReadWords, so a debugging session can pin a
// seed centrally and every client replays the same sequence.
//
// Subpackages:
//   - app: server wiring and lifecycle
//   - api/grpc/random: RandomService descriptor, handlers, and client
package random
