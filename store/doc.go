// Package store gives the resolution engine existence-checked access to a
// backing resource store.
//
// FileStore resolves location strings against the local filesystem. A
// location containing a single '*' wildcard is a pattern; the wildcard must
// stand in for exactly one directory segment (the location must contain
// "*/"), mirroring the constraint that patterns enumerate the immediate
// subdirectories of a fixed root. Subdirectories are visited in sorted
// order so pattern expansion is deterministic.
package store
