package uniqueint

// MaxDenseDomain is the widest domain backed by a PresenceIndex. Wider
// domains fall back to a SparseIndex.
const MaxDenseDomain = 1 << 20

// Index records which values of a domain have already been accepted.
type Index interface {
	// Mark records v and reports whether it was seen for the first time.
	Mark(v int) bool
}

func NewIndex(d Domain) Index {
	if d.Size() <= MaxDenseDomain {
		return NewPresenceIndex(d)
	}
	return NewSparseIndex()
}

// PresenceIndex is a fixed table with one slot per domain value, at v - Min.
type PresenceIndex struct {
	min  int
	seen []bool
}

func NewPresenceIndex(d Domain) *PresenceIndex {
	return &PresenceIndex{
		min:  d.Min,
		seen: make([]bool, d.Size()),
	}
}

// Mark reports false for values outside the domain the index was built for.
func (p *PresenceIndex) Mark(v int) bool {
	if v < p.min {
		return false
	}

	i := uint64(v) - uint64(p.min)
	if i >= uint64(len(p.seen)) || p.seen[i] {
		return false
	}
	p.seen[i] = true
	return true
}

type SparseIndex struct {
	seen map[int]struct{}
}

func NewSparseIndex() *SparseIndex {
	return &SparseIndex{seen: map[int]struct{}{}}
}

func (s *SparseIndex) Mark(v int) bool {
	if _, found := s.seen[v]; found {
		return false
	}
	s.seen[v] = struct{}{}
	return true
}
