// Package yaml provides a format.Loader for YAML configuration files,
// backed by goccy/go-yaml. It recognizes the "yml" and "yaml" extensions.
package yaml
