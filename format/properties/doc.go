// Package properties provides a format.Loader for Java-style .properties
// configuration files, backed by magiconair/properties. It recognizes the
// "properties" extension.
package properties
