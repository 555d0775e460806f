package kalla

import "strings"

// OptionalPrefix marks a location whose absence is never treated as an
// error by the resolution engine.
const OptionalPrefix = "optional:"

// locationSeparator packs several physical locations into one logical
// location. Each part is resolved independently and results are
// concatenated in part order.
const locationSeparator = ";"

// Location is a parsed configuration location specifier. The optional flag
// is extracted from the raw string exactly once, here at the boundary; the
// rest of the pipeline never re-derives it from string content.
//
// The zero Location is empty and resolves to nothing.
type Location struct {
	value    string
	optional bool
}

// ParseLocation parses a raw location string, stripping the "optional:"
// prefix into an explicit flag.
func ParseLocation(s string) Location {
	optional := strings.HasPrefix(s, OptionalPrefix)
	if optional {
		s = s[len(OptionalPrefix):]
	}

	return Location{value: s, optional: optional}
}

// IsZero reports whether the location is empty.
func (l Location) IsZero() bool {
	return l.value == ""
}

// IsOptional reports whether missing data at this location is tolerated.
func (l Location) IsOptional() bool {
	return l.optional
}

// Value returns the location string without the "optional:" prefix.
func (l Location) Value() string {
	return l.value
}

// HasPrefix reports whether the location value starts with prefix.
func (l Location) HasPrefix(prefix string) bool {
	return strings.HasPrefix(l.value, prefix)
}

// NonPrefixedValue returns the location value with prefix removed when
// present, and the value unchanged otherwise.
func (l Location) NonPrefixedValue(prefix string) string {
	return strings.TrimPrefix(l.value, prefix)
}

// Split splits the location on ';' into its physical sub-locations, in
// order. The split happens on the round-tripped string, so an "optional:"
// prefix applies to the first part only; later parts carry their own
// prefix if they need one.
func (l Location) Split() []Location {
	parts := strings.Split(l.String(), locationSeparator)

	locations := make([]Location, 0, len(parts))
	for _, part := range parts {
		locations = append(locations, ParseLocation(part))
	}

	return locations
}

// String round-trips the location back to its raw form, including the
// "optional:" prefix.
func (l Location) String() string {
	if l.optional {
		return OptionalPrefix + l.value
	}

	return l.value
}
