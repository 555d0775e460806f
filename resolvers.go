package kalla

import "fmt"

// Result is one resolved configuration resource together with the location
// that produced it and the pass it came from. Result order is a load-bearing
// contract: downstream consumers assign precedence by list position.
type Result struct {
	Location        Location
	Resource        *Resource
	ProfileSpecific bool
}

// Resolvers is the ordered registry of resolver implementations. The list
// is built once and immutable afterwards; there is no runtime registration.
type Resolvers struct {
	resolvers []Resolver
}

// NewResolvers assembles the registry. The StandardResolver is moved to the
// end of the order no matter where the caller placed it, so custom
// resolvers always get first refusal and the catch-all never shadows them.
func NewResolvers(resolvers ...Resolver) *Resolvers {
	ordered := make([]Resolver, 0, len(resolvers))

	var standard Resolver

	for _, resolver := range resolvers {
		if _, ok := resolver.(*StandardResolver); ok {
			standard = resolver

			continue
		}

		ordered = append(ordered, resolver)
	}

	if standard != nil {
		ordered = append(ordered, standard)
	}

	return &Resolvers{resolvers: ordered}
}

// Resolvers returns a copy of the registry order.
func (r *Resolvers) Resolvers() []Resolver {
	out := make([]Resolver, len(r.resolvers))
	copy(out, r.resolvers)

	return out
}

// Resolve dispatches the location to the first resolver that claims it and
// runs the default pass followed, when profiles is non-nil, by the
// profile-specific pass. Default-pass results always precede profile-pass
// results; neither pass is reordered.
//
// A zero location resolves to nothing. A non-empty location no resolver
// claims fails with ErrUnsupportedLocation.
func (r *Resolvers) Resolve(ctx *ResolverContext, location Location, profiles []string) ([]Result, error) {
	if location.IsZero() {
		return nil, nil
	}

	for _, resolver := range r.resolvers {
		if resolver.IsResolvable(ctx, location) {
			return r.resolveWith(resolver, ctx, location, profiles)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocation, location.String())
}

func (r *Resolvers) resolveWith(resolver Resolver, ctx *ResolverContext, location Location, profiles []string) ([]Result, error) {
	resources, err := resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}

	results := asResults(location, false, resources)

	if profiles == nil {
		return results, nil
	}

	profileResources, err := resolver.ResolveProfileSpecific(ctx, location, profiles)
	if err != nil {
		return nil, err
	}

	return append(results, asResults(location, true, profileResources)...), nil
}

func asResults(location Location, profileSpecific bool, resources []*Resource) []Result {
	results := make([]Result, 0, len(resources))
	for _, resource := range resources {
		results = append(results, Result{
			Location:        location,
			Resource:        resource,
			ProfileSpecific: profileSpecific,
		})
	}

	return results
}
