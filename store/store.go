package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrUnsupportedScheme is returned when a location carries a scheme other
// than "file:".
var ErrUnsupportedScheme = errors.New("unsupported location scheme")

// ErrMultipleWildcards is returned when a pattern location contains more
// than one '*'.
var ErrMultipleWildcards = errors.New("search location must contain at most one '*'")

// ErrInvalidPattern is returned when the wildcard in a pattern location
// does not stand in for a whole directory segment.
var ErrInvalidPattern = errors.New("search location must end with '*/' before any filename")

// ErrNotPattern is returned when a pattern operation is attempted on a
// location without a wildcard.
var ErrNotPattern = errors.New("location is not a search pattern")

const fileScheme = "file:"

var schemePattern = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9*]*?:)(.*)$`)

// Kind selects what a pattern expansion should produce.
type Kind int

const (
	// KindFile expands a pattern into the matching files inside each
	// wildcard directory.
	KindFile Kind = iota
	// KindDirectory expands a pattern into the wildcard directories
	// themselves.
	KindDirectory
)

// Resource is an existence-checked handle to something in the backing
// store. The handle itself may refer to a path that does not exist.
type Resource interface {
	// Name identifies the resource for logging and diagnostics.
	Name() string
	// Exists reports whether the resource is present in the backing store.
	Exists() bool
	// IsDir reports whether the resource is a directory.
	IsDir() bool
	// Open opens the resource content for reading. The caller owns the
	// returned reader.
	Open() (io.ReadCloser, error)
}

// FileStore resolves location strings against the local filesystem.
type FileStore struct{}

// NewFileStore creates a new filesystem-backed store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// IsPattern reports whether location contains a glob wildcard.
func (s *FileStore) IsPattern(location string) bool {
	return location != "" && strings.Contains(location, "*")
}

// Resource returns a handle for a single, non-pattern location.
func (s *FileStore) Resource(location string) (Resource, error) {
	path, err := s.path(location)
	if err != nil {
		return nil, err
	}

	if s.IsPattern(path) {
		return nil, fmt.Errorf("location %q is a pattern, use Resources", location)
	}

	return &fileResource{path: filepath.Clean(path)}, nil
}

// Resources expands a pattern location into the matching resources of the
// requested kind. A root directory that does not exist expands to zero
// resources, not an error.
func (s *FileStore) Resources(location string, kind Kind) ([]Resource, error) {
	path, err := s.path(location)
	if err != nil {
		return nil, err
	}

	err = validatePattern(path, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, location)
	}

	root := path[:strings.Index(path, "*/")]
	fileName := path[strings.LastIndex(path, "/")+1:]

	entries, err := os.ReadDir(filepath.Clean(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("listing %q: %w", root, err)
	}

	var resources []Resource

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		subdirectory := filepath.Join(root, entry.Name())

		if kind == KindDirectory {
			resources = append(resources, &fileResource{path: subdirectory})

			continue
		}

		candidate := filepath.Join(subdirectory, fileName)

		info, statErr := os.Stat(candidate)
		if statErr == nil && info.Mode().IsRegular() {
			resources = append(resources, &fileResource{path: candidate})
		}
	}

	return resources, nil
}

// path strips a leading "file:" scheme and rejects any other scheme.
func (s *FileStore) path(location string) (string, error) {
	match := schemePattern.FindStringSubmatch(location)
	if match == nil {
		return location, nil
	}

	if match[1] != fileScheme {
		return "", fmt.Errorf("%w %q in location %q", ErrUnsupportedScheme, match[1], location)
	}

	return match[2], nil
}

func validatePattern(path string, kind Kind) error {
	if !strings.Contains(path, "*") {
		return ErrNotPattern
	}

	if strings.Count(path, "*") != 1 {
		return ErrMultipleWildcards
	}

	directoryPath := path
	if kind != KindDirectory {
		directoryPath = path[:strings.LastIndex(path, "/")+1]
	}

	if !strings.HasSuffix(directoryPath, "*/") {
		return ErrInvalidPattern
	}

	return nil
}

type fileResource struct {
	path string
}

func (r *fileResource) Name() string {
	return r.path
}

func (r *fileResource) Exists() bool {
	_, err := os.Stat(r.path)

	return err == nil
}

func (r *fileResource) IsDir() bool {
	info, err := os.Stat(r.path)

	return err == nil && info.IsDir()
}

func (r *fileResource) Open() (io.ReadCloser, error) {
	file, err := os.Open(r.path) // #nosec G304 -- path comes from caller-supplied config locations
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", r.path, err)
	}

	return file, nil
}

func (r *fileResource) String() string {
	return r.path
}
