package kalla

// referenceSet is an insertion-ordered set of references. The slice carries
// the resolution precedence contract; the index guarantees each candidate
// is probed at most once. First insertion wins, duplicates are dropped.
type referenceSet struct {
	refs  []Reference
	index map[Reference]struct{}
}

func newReferenceSet() *referenceSet {
	return &referenceSet{
		refs:  nil,
		index: make(map[Reference]struct{}),
	}
}

func (s *referenceSet) add(ref Reference) {
	if _, ok := s.index[ref]; ok {
		return
	}

	s.index[ref] = struct{}{}
	s.refs = append(s.refs, ref)
}

func (s *referenceSet) slice() []Reference {
	return s.refs
}

func (s *referenceSet) len() int {
	return len(s.refs)
}
