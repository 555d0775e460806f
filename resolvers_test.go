package kalla

import (
	"errors"
	"testing"
)

type fakeResolver struct {
	prefix           string
	resources        []*Resource
	profileResources []*Resource
	profileCalls     int
}

func (f *fakeResolver) IsResolvable(_ *ResolverContext, location Location) bool {
	return location.HasPrefix(f.prefix)
}

func (f *fakeResolver) Resolve(_ *ResolverContext, _ Location) ([]*Resource, error) {
	return f.resources, nil
}

func (f *fakeResolver) ResolveProfileSpecific(_ *ResolverContext, _ Location, _ []string) ([]*Resource, error) {
	f.profileCalls++

	return f.profileResources, nil
}

func fakeResource() *Resource {
	return &Resource{}
}

func TestResolvers_Resolve_ZeroLocationIsNoOp(t *testing.T) {
	t.Parallel()

	resolvers := NewResolvers(&fakeResolver{prefix: "mem:"})

	results, err := resolvers.Resolve(nil, Location{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestResolvers_Resolve_UnsupportedLocation(t *testing.T) {
	t.Parallel()

	resolvers := NewResolvers(&fakeResolver{prefix: "mem:"})

	_, err := resolvers.Resolve(nil, ParseLocation("other:thing"), nil)
	if !errors.Is(err, ErrUnsupportedLocation) {
		t.Fatalf("expected ErrUnsupportedLocation, got %v", err)
	}
}

func TestNewResolvers_StandardResolverForcedLast(t *testing.T) {
	t.Parallel()

	standard, err := NewStandardResolver(Config{}, DefaultLoaders(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	custom := &fakeResolver{prefix: "mem:"}

	resolvers := NewResolvers(standard, custom)

	order := resolvers.Resolvers()
	if len(order) != 2 {
		t.Fatalf("expected 2 resolvers, got %d", len(order))
	}

	if order[0] != Resolver(custom) {
		t.Error("custom resolver should get first refusal")
	}

	if _, ok := order[1].(*StandardResolver); !ok {
		t.Error("standard resolver should be last")
	}
}

func TestResolvers_Resolve_FirstClaimingResolverWins(t *testing.T) {
	t.Parallel()

	claimed := &fakeResolver{prefix: "mem:", resources: []*Resource{fakeResource()}}
	shadowed := &fakeResolver{prefix: "mem:", resources: []*Resource{fakeResource(), fakeResource()}}

	resolvers := NewResolvers(claimed, shadowed)

	results, err := resolvers.Resolve(nil, ParseLocation("mem:thing"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("expected the first claiming resolver's single result, got %d", len(results))
	}
}

func TestResolvers_Resolve_MergesDefaultBeforeProfile(t *testing.T) {
	t.Parallel()

	defaultResource := fakeResource()
	profileResource := fakeResource()

	resolver := &fakeResolver{
		prefix:           "mem:",
		resources:        []*Resource{defaultResource},
		profileResources: []*Resource{profileResource},
	}

	resolvers := NewResolvers(resolver)

	results, err := resolvers.Resolve(nil, ParseLocation("mem:thing"), []string{"dev"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Resource != defaultResource || results[0].ProfileSpecific {
		t.Error("default-pass result must come first, tagged profileSpecific=false")
	}

	if results[1].Resource != profileResource || !results[1].ProfileSpecific {
		t.Error("profile-pass result must come last, tagged profileSpecific=true")
	}
}

func TestResolvers_Resolve_NilProfilesSkipsProfilePass(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{prefix: "mem:", resources: []*Resource{fakeResource()}}
	resolvers := NewResolvers(resolver)

	_, err := resolvers.Resolve(nil, ParseLocation("mem:thing"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.profileCalls != 0 {
		t.Error("nil profiles must skip the profile-specific pass")
	}

	_, err = resolvers.Resolve(nil, ParseLocation("mem:thing"), []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resolver.profileCalls != 1 {
		t.Error("a non-nil empty profile list still runs the profile-specific pass")
	}
}

func TestResolvers_Resolve_ResultsCarryLocation(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{prefix: "mem:", resources: []*Resource{fakeResource()}}
	resolvers := NewResolvers(resolver)

	location := ParseLocation("mem:thing")

	results, err := resolvers.Resolve(nil, location, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Location != location {
		t.Errorf("result location %q does not match input %q", results[0].Location, location)
	}
}
