// Package json provides a format.Loader for JSON configuration files,
// backed by goccy/go-json. It recognizes the "json" extension.
package json
