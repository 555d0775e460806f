package properties

import (
	"fmt"

	"github.com/magiconair/properties"
)

// Loader implements format.Loader for Java-style .properties files, backed
// by magiconair/properties.
type Loader struct{}

// NewLoader creates a new properties loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions recognized by the properties loader.
func (l *Loader) Extensions() []string {
	return []string{"properties"}
}

// Load parses properties data into a key/value document. Keys keep their
// flat dotted form; values are the expanded strings.
func (l *Loader) Load(name string, data []byte) (map[string]any, error) {
	parsed, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("loading properties from %q: %w", name, err)
	}

	document := make(map[string]any, parsed.Len())
	for key, value := range parsed.Map() {
		document[key] = value
	}

	return document, nil
}
