// Package kalla resolves configuration location specifiers into ordered
// lists of concrete, readable configuration resources.
//
// A location is a short string naming a place to look for configuration: a
// directory to scan, a single file, or a glob pattern, optionally prefixed
// with "optional:" when missing data should be tolerated. Resolution expands
// each location against the registered base names, the active profiles, and
// the extensions recognized by the configured format loaders, then probes a
// backing resource store for each candidate.
//
// The entry point is Resolvers, an ordered registry of Resolver
// implementations. The built-in StandardResolver understands plain files,
// directories, and single-wildcard patterns; it always accepts a location
// and is forced to the end of the registry so custom resolvers get first
// refusal.
//
// Resolution order is a contract: downstream consumers assign configuration
// precedence by list position, so identical inputs against an unchanged
// backing store always produce identical output.
//
// # Location grammar
//
//	["optional:"] ["resource:" | scheme ":"] path
//
// Several physical locations may be packed into one logical location
// separated by ';'. A trailing '/' marks a directory to be scanned;
// anything else is a file. A bracketed suffix such as "app[.yaml]" is an
// extension hint: the physical file is named "app" but parsed as YAML.
// A '*' marks a glob pattern expanded against the backing store.
//
// See NewModule for wiring the engine into an Fx application.
package kalla
