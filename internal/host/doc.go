// Package host holds the small platform services a VM needs besides
// randomness: a bounded memory arena with realloc semantics, an in-place sort
// over fixed-size records, and a float32 pow with pinned special cases.
// It is a library for VM hosts embedding this module; the commands here do
// not use it.
package host
