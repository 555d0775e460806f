package kalla

import (
	"fmt"
	"io"

	"github.com/0xalexb/kalla/format"
	"github.com/0xalexb/kalla/store"
)

// Resource is a probed handle to configuration content. A resource may
// refer to something that does not exist: a non-skippable reference to a
// missing file still produces a Resource whose Exists reports false, so the
// downstream loader decides whether that is fatal.
type Resource struct {
	reference      Reference
	resource       store.Resource
	emptyDirectory bool
}

func newResource(ref Reference, res store.Resource) *Resource {
	return &Resource{reference: ref, resource: res, emptyDirectory: false}
}

// NewResource wraps a store resource for use by custom resolvers. The
// reference records the owning location and the loader that will parse the
// content; its name root is the store resource name.
func NewResource(location Location, loader format.Loader, res store.Resource) *Resource {
	return newResource(newReference(location, "", res.Name(), "", "", loader), res)
}

// newEmptyDirectoryResource marks a directory that was inspected but
// contributed no candidate files, keeping its presence observable.
func newEmptyDirectoryResource(ref Reference, res store.Resource) *Resource {
	return &Resource{reference: ref, resource: res, emptyDirectory: true}
}

// Reference returns the candidate identity this resource was probed for.
func (r *Resource) Reference() Reference {
	return r.reference
}

// Exists reports whether the underlying store resource is present.
func (r *Resource) Exists() bool {
	return r.resource.Exists()
}

// IsEmptyDirectory reports whether this resource is a placeholder for a
// directory that exists but contains none of its candidate files.
func (r *Resource) IsEmptyDirectory() bool {
	return r.emptyDirectory
}

// Name identifies the underlying store resource.
func (r *Resource) Name() string {
	return r.resource.Name()
}

// Open opens the resource content for reading. The caller owns the
// returned reader.
func (r *Resource) Open() (io.ReadCloser, error) {
	return r.resource.Open()
}

// Load reads the full resource content and parses it with the reference's
// format loader.
func (r *Resource) Load() (map[string]any, error) {
	reader, err := r.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", r.Name(), err)
	}

	return r.reference.Loader().Load(r.Name(), data)
}

func (r *Resource) String() string {
	return r.resource.Name()
}
