// Package timeouts defines shared timeout constants used across the random
// service and its clients.
package timeouts

import "time"

// GRPCDial caps the wait for a random server to report healthy.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single client call to the random service.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long a server waits for in-flight calls during graceful
// shutdown before forcing a stop.
const Shutdown = 5 * time.Second
