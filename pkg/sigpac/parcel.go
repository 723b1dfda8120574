package sigpac

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/beetlebugorg/sigpac/internal/enclosure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Summary types of an aggregated parcel. Their JSON form is the registry's
// parcel information document.
type (
	Summary     = enclosure.Summary
	ParcelInfo  = enclosure.ParcelInfo
	QueryEntry  = enclosure.QueryEntry
	LandUseArea = enclosure.LandUseArea
)

// Enclosure is one decoded registry enclosure.
type Enclosure = enclosure.Feature

// EnclosureIdentity locates an enclosure in the registry hierarchy.
type EnclosureIdentity = enclosure.Identity

// Aggregator merges the enclosures of a registry query into a parcel.
//
// Create an aggregator with NewAggregator. Aggregators are safe for
// concurrent use.
type Aggregator interface {
	// Aggregate merges already decoded enclosures. crs names the coordinate
	// reference system of their geometries; empty uses the default.
	//
	// An empty input fails with ErrNoData.
	Aggregate(enclosures []Enclosure, crs string) (*Parcel, error)

	// AggregateGeoJSON decodes a registry GeoJSON FeatureCollection and
	// aggregates its features. The CRS is read from the collection's
	// "crs" member.
	AggregateGeoJSON(data []byte) (*Parcel, error)
}

// NewAggregator creates an aggregator.
//
// Example:
//
//	agg := sigpac.NewAggregator(sigpac.DefaultAggregateOptions())
//	parcel, err := agg.AggregateGeoJSON(body)
func NewAggregator(opts AggregateOptions) Aggregator {
	if opts.Precision <= 0 {
		opts.Precision = enclosure.DefaultPrecision
	}
	if opts.DefaultCRS == "" {
		opts.DefaultCRS = DefaultCRS
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &aggregatorWrapper{opts: opts}
}

// aggregatorWrapper wraps the internal aggregation and converts types
type aggregatorWrapper struct {
	opts AggregateOptions
}

func (a *aggregatorWrapper) Aggregate(enclosures []Enclosure, crs string) (*Parcel, error) {
	if crs == "" {
		crs = a.opts.DefaultCRS
	}

	res, err := enclosure.Aggregate(enclosures, crs, a.opts.Precision)
	if err != nil {
		return nil, err
	}

	if res.Skipped > 0 {
		a.opts.Logger.Debug("Skipped enclosures without polygon geometry", "skipped", res.Skipped)
	}
	a.opts.Logger.Info("Aggregated parcel",
		"features", len(enclosures),
		"land_uses", len(res.Summary.LandUses),
		"total_surface", res.Summary.ParcelInfo.TotalSurface,
		"crs", res.CRS)

	return &Parcel{
		geometry: res.Geometry,
		crs:      res.CRS,
		summary:  res.Summary,
	}, nil
}

func (a *aggregatorWrapper) AggregateGeoJSON(data []byte) (*Parcel, error) {
	col, err := enclosure.Decode(data)
	if err != nil {
		return nil, err
	}
	return a.Aggregate(col.Features, col.CRS)
}

// DecodeEnclosures decodes a registry GeoJSON FeatureCollection without
// aggregating it. The second result is the CRS named by the collection.
func DecodeEnclosures(data []byte) ([]Enclosure, string, error) {
	col, err := enclosure.Decode(data)
	if err != nil {
		return nil, "", err
	}
	return col.Features, col.CRS, nil
}

// Parcel is the result of an aggregation: the merged outline of all its
// enclosures and the parcel metadata.
type Parcel struct {
	geometry orb.Geometry
	crs      string
	summary  Summary
}

// Geometry returns the merged outline, an orb.Polygon or orb.MultiPolygon.
func (p *Parcel) Geometry() orb.Geometry {
	return p.geometry
}

// CRS returns the coordinate reference system of the geometry.
func (p *Parcel) CRS() string {
	return p.crs
}

// Summary returns a copy of the parcel metadata. Parcels may be shared
// through a ParcelCache, so changes to the copy do not reach the parcel.
func (p *Parcel) Summary() Summary {
	return p.summary.Clone()
}

// Bound returns the bounding box of the merged outline.
func (p *Parcel) Bound() orb.Bound {
	return p.geometry.Bound()
}

// LandUses returns the land-use breakdown in first-encounter order, each
// entry annotated with its catalogue description.
func (p *Parcel) LandUses() []LandUse {
	out := make([]LandUse, 0, len(p.summary.LandUses))
	for _, u := range p.summary.LandUses {
		desc, _ := LandUseDescription(u.Code)
		out = append(out, LandUse{
			Code:        u.Code,
			Description: desc,
			Surface:     u.Surface,
		})
	}
	return out
}

// GeometryJSON encodes the merged outline as a GeoJSON geometry with an
// extra "CRS" member naming its reference system.
func (p *Parcel) GeometryJSON() ([]byte, error) {
	raw, err := json.Marshal(geojson.NewGeometry(p.geometry))
	if err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}
	crs, err := json.Marshal(p.crs)
	if err != nil {
		return nil, fmt.Errorf("encode crs: %w", err)
	}
	members["CRS"] = crs

	return json.Marshal(members)
}

// MarshalJSON encodes the parcel as {"geometry": ..., "metadata": ...}.
func (p *Parcel) MarshalJSON() ([]byte, error) {
	geom, err := p.GeometryJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Geometry json.RawMessage `json:"geometry"`
		Metadata Summary         `json:"metadata"`
	}{
		Geometry: geom,
		Metadata: p.summary,
	})
}
