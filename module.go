package kalla

import (
	"github.com/0xalexb/kalla/format"
	jsonloader "github.com/0xalexb/kalla/format/json"
	propertiesloader "github.com/0xalexb/kalla/format/properties"
	yamlloader "github.com/0xalexb/kalla/format/yaml"
	"github.com/0xalexb/kalla/store"

	"go.uber.org/fx"
)

// ResolverGroup is the Fx value group collecting Resolver implementations
// into the registry. Contribute custom resolvers with:
//
//	fx.Provide(fx.Annotate(NewMyResolver,
//		fx.As(new(kalla.Resolver)),
//		fx.ResultTags(kalla.ResolverGroup)))
//
// Fx makes no ordering promise for value groups; NewResolvers forces the
// standard resolver to the end either way, so custom resolvers always get
// first refusal. Callers needing a deterministic order among several custom
// resolvers should call NewResolvers directly.
const ResolverGroup = `group:"kalla.resolvers"`

// DefaultLoaders returns the built-in format loaders in registration order:
// properties, JSON, YAML. Directory scans give later entries precedence, so
// YAML wins when several formats provide the same base name.
func DefaultLoaders() []format.Loader {
	return []format.Loader{
		propertiesloader.NewLoader(),
		jsonloader.NewLoader(),
		yamlloader.NewLoader(),
	}
}

// NewModule creates an Fx module wiring the resolution engine: the backing
// file store, the format loaders, the standard resolver (contributed to
// ResolverGroup) and the Resolvers registry consuming that group.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module("kalla",
		fx.Provide(store.NewFileStore),
		fx.Provide(func() []format.Loader {
			if len(options.Loaders) > 0 {
				return options.Loaders
			}

			return DefaultLoaders()
		}),
		fx.Provide(fx.Annotate(
			//nolint:ireturn // contributed to the resolver value group
			func(loaders []format.Loader, st *store.FileStore) (Resolver, error) {
				return NewStandardResolver(options.Config, loaders, st, options.Logger)
			},
			fx.ResultTags(ResolverGroup),
		)),
		fx.Provide(fx.Annotate(
			func(resolvers []Resolver) *Resolvers {
				return NewResolvers(resolvers...)
			},
			fx.ParamTags(ResolverGroup),
		)),
	)
}
