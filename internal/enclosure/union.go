package enclosure

import (
	"fmt"

	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"
)

// Union merges the polygonal geometries into one outline. Adjacent or
// overlapping polygons are dissolved; disjoint pieces are kept as separate
// members of a MultiPolygon.
//
// Geometries that are nil or not polygonal are skipped and counted in the
// second result. A result with a single member is returned as orb.Polygon.
func Union(geoms []orb.Geometry) (orb.Geometry, int, error) {
	var (
		parts   []polygol.Geom
		skipped int
	)
	for _, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			parts = append(parts, toGeom(orb.MultiPolygon{v}))
		case orb.MultiPolygon:
			parts = append(parts, toGeom(v))
		default:
			skipped++
		}
	}

	if len(parts) == 0 {
		return nil, skipped, &ErrNoData{Reason: "no geometries found"}
	}

	merged := parts[0]
	if len(parts) > 1 {
		var err error
		merged, err = polygol.Union(parts[0], parts[1:]...)
		if err != nil {
			return nil, skipped, fmt.Errorf("union of %d geometries: %w", len(parts), err)
		}
	}

	mp := fromGeom(merged)
	switch len(mp) {
	case 0:
		return nil, skipped, &ErrNoData{Reason: "union is empty"}
	case 1:
		return mp[0], skipped, nil
	default:
		return mp, skipped, nil
	}
}

func toGeom(mp orb.MultiPolygon) polygol.Geom {
	out := make(polygol.Geom, 0, len(mp))
	for _, poly := range mp {
		rings := make([][][]float64, 0, len(poly))
		for _, ring := range poly {
			pts := make([][]float64, 0, len(ring))
			for _, p := range ring {
				pts = append(pts, []float64{p[0], p[1]})
			}
			rings = append(rings, pts)
		}
		out = append(out, rings)
	}
	return out
}

func fromGeom(g polygol.Geom) orb.MultiPolygon {
	out := make(orb.MultiPolygon, 0, len(g))
	for _, rings := range g {
		poly := make(orb.Polygon, 0, len(rings))
		for _, pts := range rings {
			ring := make(orb.Ring, 0, len(pts))
			for _, p := range pts {
				if len(p) < 2 {
					continue
				}
				ring = append(ring, orb.Point{p[0], p[1]})
			}
			poly = append(poly, ring)
		}
		if len(poly) > 0 {
			out = append(out, poly)
		}
	}
	return out
}
