// Package format defines the contract between the resolution engine and
// pluggable configuration-file formats.
//
// A Loader advertises the file extensions it recognizes and parses raw
// resource bytes into a generic key/value document. The order in which
// loaders are registered matters: directory scans give later-registered
// loaders and extensions higher resolution precedence.
package format
