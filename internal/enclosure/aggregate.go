package enclosure

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// DefaultPrecision is the number of decimals kept in land-use areas.
const DefaultPrecision = 4

// Result is the merged geometry and metadata of a parcel.
type Result struct {
	Geometry orb.Geometry
	CRS      string
	Summary  Summary
	// Skipped counts features whose geometry was missing or not polygonal.
	Skipped int
}

// Aggregate merges the enclosure features of one registry query into a single
// parcel. The total surface is the raw sum of all enclosure surfaces; land-use
// areas are grouped by code in first-encounter order and rounded to precision
// decimals. A negative precision selects DefaultPrecision.
//
// Identity fields are taken from the last feature. Zone and enclosure are
// only reported when fewer than two features were supplied. A negative or
// non-finite surface fails with ErrInvalidFeature.
func Aggregate(features []Feature, crs string, precision int) (*Result, error) {
	if len(features) == 0 {
		return nil, &ErrNoData{Reason: "no features found"}
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	for i := range features {
		if err := checkSurface(features[i].Surface); err != nil {
			return nil, &ErrInvalidFeature{Index: i, Reason: err.Error()}
		}
	}

	geoms := make([]orb.Geometry, 0, len(features))
	for i := range features {
		geoms = append(geoms, features[i].Geometry)
	}
	geometry, skipped, err := Union(geoms)
	if err != nil {
		return nil, err
	}

	var (
		total float64
		codes []string
	)
	byCode := make(map[string]float64)
	queries := make([]QueryEntry, 0, len(features))
	for i := range features {
		f := &features[i]
		queries = append(queries, newQueryEntry(f))
		total += f.Surface

		if f.LandUse == "" {
			continue
		}
		if _, seen := byCode[f.LandUse]; !seen {
			codes = append(codes, f.LandUse)
		}
		byCode[f.LandUse] += f.Surface
	}

	usos := make([]LandUseArea, 0, len(codes))
	for _, code := range codes {
		area := round(byCode[code], precision)
		usos = append(usos, LandUseArea{
			Code:              code,
			Surface:           area,
			AdmissibleSurface: area,
		})
	}

	last := features[len(features)-1].Identity
	info := ParcelInfo{
		Province:     last.Province,
		Municipality: last.Municipality,
		Aggregate:    last.Aggregate,
		Polygon:      last.Polygon,
		Parcel:       last.Parcel,
		TotalSurface: total,
	}
	if len(features) < 2 {
		zone, enclosure := last.Zone, last.Enclosure
		info.Zone = &zone
		info.Enclosure = &enclosure
	}

	return &Result{
		Geometry: geometry,
		CRS:      crs,
		Summary: Summary{
			ParcelInfo: info,
			Query:      queries,
			LandUses:   usos,
		},
		Skipped: skipped,
	}, nil
}

func checkSurface(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%s %v is not finite", PropSurface, v)
	case v < 0:
		return fmt.Errorf("%s %v is negative", PropSurface, v)
	}
	return nil
}

// round rounds half to even on the exact binary value of v, so 2.00005
// (stored just below the tie) rounds down to 2 at four decimals.
func round(v float64, precision int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}
	return r
}
