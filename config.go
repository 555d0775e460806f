package kalla

import (
	"fmt"
	"strings"
)

// DefaultConfigName is the conventional base name probed during directory
// scans when no names are configured.
const DefaultConfigName = "application"

// Config holds the bound settings for the standard resolver.
type Config struct {
	// Names are the base configuration names probed during directory
	// scans, in precedence order. Defaults to DefaultConfigName.
	Names []string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() bool {
	if len(c.Names) == 0 {
		c.Names = []string{DefaultConfigName}

		return true
	}

	return false
}

// Validate validates the Config. Base names must be non-empty and must not
// contain wildcards; a violation fails at construction, not at resolve time.
func (c *Config) Validate() error {
	for _, name := range c.Names {
		if name == "" {
			return ErrEmptyConfigName
		}

		if strings.Contains(name, "*") {
			return fmt.Errorf("%w: %q", ErrInvalidConfigName, name)
		}
	}

	return nil
}

// ParseNames splits a comma-separated list of base configuration names,
// trimming whitespace and dropping empty entries. It is the bindable string
// form of Config.Names.
func ParseNames(s string) []string {
	var names []string

	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}
