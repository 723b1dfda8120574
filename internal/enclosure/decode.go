package enclosure

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

// Collection is a decoded registry response: the enclosure features and the
// coordinate reference system named by the response envelope.
type Collection struct {
	Features []Feature
	CRS      string
}

// envelope captures the members of a registry response that orb's
// FeatureCollection does not model.
type envelope struct {
	CRS *struct {
		Type       string `json:"type"`
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"crs"`
}

// Decode parses a registry GeoJSON FeatureCollection into enclosure features.
//
// Every feature must carry a finite, non-negative numeric surface. Identity
// properties must be integers and default to 0 when absent; the land-use
// code defaults to "".
func Decode(data []byte) (*Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	out := &Collection{
		Features: make([]Feature, 0, len(fc.Features)),
	}
	if env.CRS != nil {
		out.CRS = env.CRS.Properties.Name
	}

	for i, f := range fc.Features {
		feature, err := decodeFeature(i, f)
		if err != nil {
			return nil, err
		}
		out.Features = append(out.Features, feature)
	}

	return out, nil
}

func decodeFeature(index int, f *geojson.Feature) (Feature, error) {
	props := f.Properties

	surface, ok, err := number(props, PropSurface)
	if err != nil {
		return Feature{}, &ErrInvalidFeature{Index: index, Reason: err.Error()}
	}
	if !ok {
		return Feature{}, &ErrInvalidFeature{Index: index, Reason: "missing " + PropSurface}
	}
	if err := checkSurface(surface); err != nil {
		return Feature{}, &ErrInvalidFeature{Index: index, Reason: err.Error()}
	}

	landUse, _ := props[PropLandUse].(string)

	feature := Feature{
		Geometry:   f.Geometry,
		LandUse:    landUse,
		Surface:    surface,
		Attributes: make(map[string]interface{}, len(descriptiveProps)),
	}

	ids := []struct {
		prop string
		dst  *int
	}{
		{PropProvince, &feature.Identity.Province},
		{PropMunicipality, &feature.Identity.Municipality},
		{PropAggregate, &feature.Identity.Aggregate},
		{PropZone, &feature.Identity.Zone},
		{PropPolygon, &feature.Identity.Polygon},
		{PropParcel, &feature.Identity.Parcel},
		{PropEnclosure, &feature.Identity.Enclosure},
	}
	for _, id := range ids {
		v, ok, err := number(props, id.prop)
		if err != nil {
			return Feature{}, &ErrInvalidFeature{Index: index, Reason: err.Error()}
		}
		if !ok {
			continue
		}
		if math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return Feature{}, &ErrInvalidFeature{
				Index:  index,
				Reason: fmt.Sprintf("%s %v is not an integer", id.prop, v),
			}
		}
		*id.dst = int(v)
	}

	for _, name := range descriptiveProps {
		if v, ok := props[name]; ok {
			feature.Attributes[name] = v
		}
	}

	return feature, nil
}

// number reads a numeric property. The registry sends numbers, but some
// layers encode them as strings. A missing or null property reports ok=false.
func number(props geojson.Properties, name string) (float64, bool, error) {
	raw, ok := props[name]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%s %q is not numeric", name, v)
		}
		return f, true, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%s %q is not numeric", name, v)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%s has unsupported type %T", name, raw)
	}
}
