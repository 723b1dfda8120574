package sigpac

import (
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// minExtent keeps R-tree rectangles non-degenerate for point-like outlines.
const minExtent = 1e-9

// EnclosureIndex answers point and identity queries over decoded enclosures,
// typically the features of one registry tile or listing.
//
// Example:
//
//	enclosures, _, err := sigpac.DecodeEnclosures(body)
//	idx := sigpac.NewEnclosureIndex(enclosures)
//	hits := idx.Locate(-4.4214, 36.7213)
type EnclosureIndex struct {
	rtree      *rtreego.Rtree
	enclosures []Enclosure
}

// indexedEnclosure wraps an enclosure for R-tree storage.
type indexedEnclosure struct {
	pos   int
	bound orb.Bound
}

// Bounds implements rtreego.Spatial.
func (e *indexedEnclosure) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bound.Min[0], e.bound.Min[1]}
	lengths := []float64{
		max(e.bound.Max[0]-e.bound.Min[0], minExtent),
		max(e.bound.Max[1]-e.bound.Min[1], minExtent),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewEnclosureIndex indexes the polygonal enclosures. Enclosures without
// polygon geometry are kept for Find but never returned by Locate.
func NewEnclosureIndex(enclosures []Enclosure) *EnclosureIndex {
	idx := &EnclosureIndex{
		rtree:      rtreego.NewTree(2, 25, 50),
		enclosures: enclosures,
	}

	for i := range enclosures {
		switch enclosures[i].Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			idx.rtree.Insert(&indexedEnclosure{
				pos:   i,
				bound: enclosures[i].Geometry.Bound(),
			})
		}
	}

	return idx
}

// Len returns the number of indexed enclosures.
func (idx *EnclosureIndex) Len() int {
	return len(idx.enclosures)
}

// Locate returns the enclosures whose outline contains (lon, lat), in
// input order.
func (idx *EnclosureIndex) Locate(lon, lat float64) []Enclosure {
	pt := orb.Point{lon, lat}
	query, _ := rtreego.NewRect(rtreego.Point{lon, lat}, []float64{minExtent, minExtent})

	candidates := idx.rtree.SearchIntersect(query)
	hits := make([]int, 0, len(candidates))
	for _, c := range candidates {
		indexed := c.(*indexedEnclosure)
		if contains(idx.enclosures[indexed.pos].Geometry, pt) {
			hits = append(hits, indexed.pos)
		}
	}

	// R-tree order is unspecified.
	slices.Sort(hits)

	out := make([]Enclosure, 0, len(hits))
	for _, pos := range hits {
		out = append(out, idx.enclosures[pos])
	}
	return out
}

// Find returns the first enclosure whose parcel (LayerParcel) or enclosure
// (LayerEnclosure) number equals n.
func (idx *EnclosureIndex) Find(layer Layer, n int) (Enclosure, bool) {
	for _, e := range idx.enclosures {
		var got int
		switch layer {
		case LayerParcel:
			got = e.Identity.Parcel
		case LayerEnclosure:
			got = e.Identity.Enclosure
		default:
			return Enclosure{}, false
		}
		if got == n {
			return e, true
		}
	}
	return Enclosure{}, false
}

func contains(g orb.Geometry, pt orb.Point) bool {
	switch v := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(v, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(v, pt)
	default:
		return false
	}
}
