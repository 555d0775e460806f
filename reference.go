package kalla

import (
	"strings"

	"github.com/0xalexb/kalla/format"
)

// Reference is the identity of one candidate configuration resource before
// existence probing: owning location, directory (empty for explicit files),
// name root, profile, extension and the format loader that will parse it.
//
// References are value types; two references are equal iff all fields
// match. They live only for the duration of a single resolve call.
type Reference struct {
	location  Location
	directory string
	root      string
	profile   string
	extension string
	loader    format.Loader
}

func newReference(location Location, directory, root, profile, extension string, loader format.Loader) Reference {
	return Reference{
		location:  location,
		directory: directory,
		root:      root,
		profile:   profile,
		extension: extension,
		loader:    loader,
	}
}

// Location returns the owning location this reference was expanded from.
func (r Reference) Location() Location {
	return r.location
}

// Directory returns the scanned directory, or "" for an explicitly named
// file reference.
func (r Reference) Directory() string {
	return r.directory
}

// Profile returns the profile qualifier, or "" for the default pass.
func (r Reference) Profile() string {
	return r.profile
}

// Extension returns the physical file extension, or "" when the location
// carried an extension hint (the physical name has no extension).
func (r Reference) Extension() string {
	return r.extension
}

// Loader returns the format loader responsible for parsing the resource.
func (r Reference) Loader() format.Loader {
	return r.loader
}

// ResourceLocation computes the store location probed for this reference:
// root, a "-profile" qualifier when profile-specific, and a ".extension"
// suffix when the reference names a physical extension.
func (r Reference) ResourceLocation() string {
	var b strings.Builder

	b.WriteString(r.root)

	if r.profile != "" {
		b.WriteString("-")
		b.WriteString(r.profile)
	}

	if r.extension != "" {
		b.WriteString(".")
		b.WriteString(r.extension)
	}

	return b.String()
}

// Skippable reports whether the absence of this candidate is expected and
// silent. Directory-scan guesses and profile-qualified candidates are
// skippable, as is anything under an optional location. An explicitly named
// file in the default pass is not: its absence must surface to the caller.
func (r Reference) Skippable() bool {
	return r.location.IsOptional() || r.directory != "" || r.profile != ""
}

func (r Reference) String() string {
	return r.ResourceLocation()
}
