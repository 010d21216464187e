package uniqueint

import (
	"math"

	"github.com/PoliNetworkOrg/uniqueint/pkg/constants"
)

// Domain is the closed interval [Min, Max] of integers a results file may
// contain.
type Domain struct {
	Min int
	Max int
}

var DefaultDomain = Domain{Min: constants.MinInteger, Max: constants.MaxInteger}

func (d Domain) Contains(v int) bool {
	return v >= d.Min && v <= d.Max
}

// Size is the number of integers in d, zero when Max < Min. It saturates at
// math.MaxUint64 for the full int range.
func (d Domain) Size() uint64 {
	if d.Max < d.Min {
		return 0
	}

	span := uint64(d.Max) - uint64(d.Min)
	if span == math.MaxUint64 {
		return span
	}
	return span + 1
}
