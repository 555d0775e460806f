package format

// Loader handles one configuration file format.
type Loader interface {
	// Extensions returns the file extensions recognized by this loader,
	// without the leading dot, in precedence order.
	Extensions() []string

	// Load parses data into a key/value document. The name identifies the
	// origin of the data and is used in error messages only.
	Load(name string, data []byte) (map[string]any, error)
}
