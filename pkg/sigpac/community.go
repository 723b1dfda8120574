package sigpac

import (
	"github.com/beetlebugorg/sigpac/internal/community"
)

// CommunityCount is the number of autonomous communities (including the
// autonomous cities of Ceuta and Melilla).
const CommunityCount = community.Count

// ResolveCommunity returns the autonomous community of province. ok is false
// when no community contains it.
func ResolveCommunity(province int) (id int, ok bool) {
	return community.Resolve(province)
}

// CommunityFor is ResolveCommunity for callers that need a community; an
// unknown province fails with ErrUnknownRegion.
func CommunityFor(province int) (int, error) {
	return community.MustResolve(province)
}

// ProvincesOf returns the provinces of community, or nil for an unknown id.
// The returned slice is a copy.
func ProvincesOf(id int) []int {
	return community.Provinces(id)
}
