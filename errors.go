package kalla

import "errors"

// ErrUnsupportedLocation is returned when no registered resolver claims a
// non-empty location.
var ErrUnsupportedLocation = errors.New("unsupported config data location")

// ErrLocationNotFound is returned when a mandatory pattern location expands
// to zero matches.
var ErrLocationNotFound = errors.New("config data location not found")

// ErrUnknownExtension is returned when an explicitly named file's extension
// is not recognized by any format loader and no extension hint was supplied.
var ErrUnknownExtension = errors.New("file extension is not known to any format loader")

// ErrInvalidConfigName is returned when a configured base name contains a
// wildcard character. Detected at construction, before any resolve call.
var ErrInvalidConfigName = errors.New("config name must not contain '*'")

// ErrEmptyConfigName is returned when a configured base name is empty.
var ErrEmptyConfigName = errors.New("config name must not be empty")

// ErrNoLoaders is returned when a resolver is constructed without any
// format loaders.
var ErrNoLoaders = errors.New("at least one format loader is required")
