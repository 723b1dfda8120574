// Package enclosure decodes registry enclosure features and merges them into
// parcel-level geometry and metadata.
package enclosure

import (
	"github.com/paulmach/orb"
)

// Registry property names of an enclosure feature.
const (
	PropProvince       = "provincia"
	PropMunicipality   = "municipio"
	PropAggregate      = "agregado"
	PropZone           = "zona"
	PropPolygon        = "poligono"
	PropParcel         = "parcela"
	PropEnclosure      = "recinto"
	PropSurface        = "superficie"
	PropLandUse        = "uso_sigpac"
	PropAdmissibility  = "admisibilidad"
	PropAltitude       = "altitud"
	PropIrrigationCoef = "coef_regadio"
	PropIncidents      = "incidencias"
	PropSlope          = "pendiente_media"
	PropRegion         = "region"
)

// descriptiveProps are copied verbatim into each per-enclosure query record.
var descriptiveProps = []string{
	PropAdmissibility,
	PropAltitude,
	PropIrrigationCoef,
	PropIncidents,
	PropSlope,
	PropEnclosure,
	PropRegion,
}

// Identity locates an enclosure in the registry hierarchy.
type Identity struct {
	Province     int
	Municipality int
	Aggregate    int
	Zone         int
	Polygon      int
	Parcel       int
	Enclosure    int
}

// Feature is one enclosure record returned by a registry query.
type Feature struct {
	// Geometry is the enclosure outline. Non-polygonal or nil geometries
	// still contribute metadata but are left out of the union.
	Geometry orb.Geometry
	// LandUse is the land-use code (e.g. "TA", "OV"). Empty when absent.
	LandUse string
	// Surface is the enclosure area in square meters.
	Surface float64
	// Identity is the enclosure's position in the registry hierarchy.
	Identity Identity
	// Attributes holds the raw descriptive properties (admissibility,
	// altitude, irrigation coefficient, incidents, slope, region).
	Attributes map[string]interface{}
}

// Attribute returns a descriptive attribute by registry property name.
func (f *Feature) Attribute(name string) (interface{}, bool) {
	v, ok := f.Attributes[name]
	return v, ok
}
