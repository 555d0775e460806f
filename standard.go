package kalla

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/0xalexb/kalla/format"
	"github.com/0xalexb/kalla/store"
)

// resourcePrefix is an accepted, redundant location prefix naming the
// resource type; it is stripped before path resolution.
const resourcePrefix = "resource:"

var (
	urlSchemePattern     = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9*]*?:)(.*)$`)
	extensionHintPattern = regexp.MustCompile(`^(.*)\[(\.[a-zA-Z0-9_]+)\]$`)
)

// StandardResolver resolves file, directory and single-wildcard pattern
// locations against a backing resource store. It claims every location, so
// NewResolvers keeps it at the end of the registry as the catch-all.
type StandardResolver struct {
	logger  *slog.Logger
	loaders []format.Loader
	names   []string
	store   *store.FileStore
}

// NewStandardResolver creates the built-in resolver. The Config supplies
// the base configuration names (defaulting to DefaultConfigName) and is
// validated eagerly: a name containing a wildcard fails here, before any
// resolve call. Loaders are consulted in registration order; a nil store
// defaults to the filesystem and a nil logger to slog.Default.
func NewStandardResolver(cfg Config, loaders []format.Loader, st *store.FileStore, logger *slog.Logger) (*StandardResolver, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if len(loaders) == 0 {
		return nil, ErrNoLoaders
	}

	if st == nil {
		st = store.NewFileStore()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StandardResolver{
		logger:  logger,
		loaders: loaders,
		names:   cfg.Names,
		store:   st,
	}, nil
}

// IsResolvable always returns true: the standard resolver is the catch-all.
func (r *StandardResolver) IsResolvable(_ *ResolverContext, _ Location) bool {
	return true
}

// Resolve expands the location for the profile-independent pass.
func (r *StandardResolver) Resolve(ctx *ResolverContext, location Location) ([]*Resource, error) {
	refs := newReferenceSet()

	for _, sub := range location.Split() {
		err := r.addReferences(ctx, sub, "", refs)
		if err != nil {
			return nil, err
		}
	}

	return r.resolveAll(refs)
}

// ResolveProfileSpecific expands the location once per profile: all
// sub-locations for one profile are produced before any for the next.
func (r *StandardResolver) ResolveProfileSpecific(ctx *ResolverContext, location Location, profiles []string) ([]*Resource, error) {
	refs := newReferenceSet()

	for _, profile := range profiles {
		for _, sub := range location.Split() {
			err := r.addReferences(ctx, sub, profile, refs)
			if err != nil {
				return nil, err
			}
		}
	}

	return r.resolveAll(refs)
}

// addReferences expands one sub-location into candidate references. Any
// failure is annotated with the offending location, never swallowed.
func (r *StandardResolver) addReferences(ctx *ResolverContext, location Location, profile string, refs *referenceSet) error {
	resourceLocation := r.resourceLocation(ctx, location)

	if isDirectoryLocation(resourceLocation) {
		r.addDirectoryReferences(location, resourceLocation, profile, refs)

		return nil
	}

	err := r.addFileReference(location, resourceLocation, profile, refs)
	if err != nil {
		return fmt.Errorf("unable to resolve config data location %q: %w", location.String(), err)
	}

	return nil
}

// resourceLocation computes the store location for a sub-location: the
// "resource:" prefix is stripped, absolute paths and scheme-prefixed paths
// are used as-is, and anything else resolves relative to the parent
// resource's directory when the resolution is nested inside one.
func (r *StandardResolver) resourceLocation(ctx *ResolverContext, location Location) string {
	resourceLocation := location.NonPrefixedValue(resourcePrefix)

	isAbsolute := strings.HasPrefix(resourceLocation, "/") || urlSchemePattern.MatchString(resourceLocation)
	if isAbsolute {
		return resourceLocation
	}

	if parent := ctx.parent(); parent != nil {
		parentLocation := parent.Reference().ResourceLocation()
		parentDirectory := parentLocation[:strings.LastIndex(parentLocation, "/")+1]

		return parentDirectory + resourceLocation
	}

	return resourceLocation
}

// addDirectoryReferences builds one candidate per (name, loader, extension).
// For a fixed name, candidates are enumerated in reverse registration order
// so that later-registered loaders and extensions win when several formats
// could satisfy the same base name. The reversal is intentional precedence
// policy; do not flatten it back to registration order.
func (r *StandardResolver) addDirectoryReferences(location Location, directory, profile string, refs *referenceSet) {
	for _, name := range r.names {
		for i := len(r.loaders) - 1; i >= 0; i-- {
			loader := r.loaders[i]
			extensions := loader.Extensions()

			for j := len(extensions) - 1; j >= 0; j-- {
				refs.add(newReference(location, directory, directory+name, profile, extensions[j], loader))
			}
		}
	}
}

// addFileReference builds exactly one candidate for an explicitly named
// file. A bracketed extension hint such as "app[.yaml]" forces the format
// while leaving the physical name untouched, recorded as an empty reference
// extension. Without a hint, the first loader recognizing the trailing
// extension wins, in registration order.
func (r *StandardResolver) addFileReference(location Location, file, profile string, refs *referenceSet) error {
	extensionHint := false

	if match := extensionHintPattern.FindStringSubmatch(file); match != nil {
		file = match[1] + match[2]
		extensionHint = true
	}

	for _, loader := range r.loaders {
		extension := loadableExtension(loader, file)
		if extension == "" {
			continue
		}

		root := file[:len(file)-len(extension)-1]

		if extensionHint {
			extension = ""
		}

		refs.add(newReference(location, "", root, profile, extension, loader))

		return nil
	}

	return fmt.Errorf("%w: %q (a location meant to reference a directory must end in '/')", ErrUnknownExtension, file)
}

func loadableExtension(loader format.Loader, file string) string {
	lower := strings.ToLower(file)

	for _, extension := range loader.Extensions() {
		if strings.HasSuffix(lower, "."+strings.ToLower(extension)) {
			return extension
		}
	}

	return ""
}

func isDirectoryLocation(resourceLocation string) bool {
	return strings.HasSuffix(resourceLocation, "/") ||
		strings.HasSuffix(resourceLocation, string(filepath.Separator))
}

// resolveAll probes every reference in set order. When nothing at all
// resolved, it falls back to synthesizing empty-directory placeholders so
// inspected directories stay observable.
func (r *StandardResolver) resolveAll(refs *referenceSet) ([]*Resource, error) {
	var resolved []*Resource

	for _, ref := range refs.slice() {
		resources, err := r.resolveReference(ref)
		if err != nil {
			return nil, err
		}

		resolved = append(resolved, resources...)
	}

	if len(resolved) > 0 {
		return resolved, nil
	}

	return r.resolveEmptyDirectories(refs)
}

func (r *StandardResolver) resolveReference(ref Reference) ([]*Resource, error) {
	resourceLocation := ref.ResourceLocation()

	if !r.store.IsPattern(resourceLocation) {
		return r.resolveNonPattern(ref, resourceLocation)
	}

	return r.resolvePattern(ref, resourceLocation)
}

func (r *StandardResolver) resolveNonPattern(ref Reference, resourceLocation string) ([]*Resource, error) {
	resource, err := r.store.Resource(resourceLocation)
	if err != nil {
		return nil, r.wrapStoreError(ref, err)
	}

	if !resource.Exists() && ref.Skippable() {
		r.logSkipped(ref)

		return nil, nil
	}

	return []*Resource{newResource(ref, resource)}, nil
}

// resolvePattern expands a wildcard reference. Zero matches are silence for
// skippable guesses and optional locations; for a mandatory, explicitly
// named pattern they are a hard failure.
func (r *StandardResolver) resolvePattern(ref Reference, resourceLocation string) ([]*Resource, error) {
	matches, err := r.store.Resources(resourceLocation, store.KindFile)
	if err != nil {
		return nil, r.wrapStoreError(ref, err)
	}

	if len(matches) == 0 {
		if ref.Skippable() {
			r.logSkipped(ref)

			return nil, nil
		}

		return nil, fmt.Errorf("%w: %q matched nothing", ErrLocationNotFound, ref.Location().String())
	}

	resolved := make([]*Resource, 0, len(matches))

	for _, match := range matches {
		if !match.Exists() && ref.Skippable() {
			r.logSkipped(ref)

			continue
		}

		resolved = append(resolved, newResource(ref, match))
	}

	return resolved, nil
}

func (r *StandardResolver) resolveEmptyDirectories(refs *referenceSet) ([]*Resource, error) {
	var resolved []*Resource

	seen := make(map[string]struct{})

	for _, ref := range refs.slice() {
		if ref.Directory() == "" {
			continue
		}

		placeholders, err := r.resolveEmptyDirectory(ref)
		if err != nil {
			return nil, err
		}

		for _, placeholder := range placeholders {
			if _, duplicate := seen[placeholder.Name()]; duplicate {
				continue
			}

			seen[placeholder.Name()] = struct{}{}
			resolved = append(resolved, placeholder)
		}
	}

	return resolved, nil
}

func (r *StandardResolver) resolveEmptyDirectory(ref Reference) ([]*Resource, error) {
	if !r.store.IsPattern(ref.ResourceLocation()) {
		return r.resolveNonPatternEmptyDirectory(ref)
	}

	return r.resolvePatternEmptyDirectories(ref)
}

func (r *StandardResolver) resolveNonPatternEmptyDirectory(ref Reference) ([]*Resource, error) {
	directory, err := r.store.Resource(ref.Directory())
	if err != nil {
		return nil, r.wrapStoreError(ref, err)
	}

	if !directory.Exists() {
		return nil, nil
	}

	return []*Resource{newEmptyDirectoryResource(ref, directory)}, nil
}

func (r *StandardResolver) resolvePatternEmptyDirectories(ref Reference) ([]*Resource, error) {
	subdirectories, err := r.store.Resources(ref.Directory(), store.KindDirectory)
	if err != nil {
		return nil, r.wrapStoreError(ref, err)
	}

	if len(subdirectories) == 0 && !ref.Location().IsOptional() {
		return nil, fmt.Errorf("%w: %q contains no subdirectories", ErrLocationNotFound, ref.Location().String())
	}

	resolved := make([]*Resource, 0, len(subdirectories))

	for _, subdirectory := range subdirectories {
		if !subdirectory.Exists() {
			continue
		}

		resolved = append(resolved, newEmptyDirectoryResource(ref, subdirectory))
	}

	return resolved, nil
}

func (r *StandardResolver) wrapStoreError(ref Reference, err error) error {
	return fmt.Errorf("unable to resolve config data location %q: %w", ref.Location().String(), err)
}

func (r *StandardResolver) logSkipped(ref Reference) {
	r.logger.Debug("skipping missing resource", "reference", ref.String())
}
