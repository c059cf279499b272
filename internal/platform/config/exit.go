package config

import (
	"fmt"
	"os"
	"strings"
)

// Exitf reports a fatal CLI error on stderr and exits with status 1.
func Exitf(format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
