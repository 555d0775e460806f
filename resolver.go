package kalla

// Resolver resolves a location into configuration resources. Implementations
// are assembled once at startup (see NewResolvers and NewModule) and must be
// safe for concurrent read-only use.
type Resolver interface {
	// IsResolvable reports whether this resolver understands the location.
	// The registry dispatches to the first resolver that claims it.
	IsResolvable(ctx *ResolverContext, location Location) bool

	// Resolve expands the location for the profile-independent pass.
	Resolve(ctx *ResolverContext, location Location) ([]*Resource, error)

	// ResolveProfileSpecific expands the location once per profile, in
	// profile order.
	ResolveProfileSpecific(ctx *ResolverContext, location Location, profiles []string) ([]*Resource, error)
}

// ResolverContext carries call-scoped resolution state. A nil context is
// equivalent to an empty one.
type ResolverContext struct {
	// Parent, when non-nil, is the resource whose content triggered the
	// current resolution. Relative locations discovered inside another
	// configuration resource resolve against the parent's directory.
	Parent *Resource
}

func (c *ResolverContext) parent() *Resource {
	if c == nil {
		return nil
	}

	return c.Parent
}
