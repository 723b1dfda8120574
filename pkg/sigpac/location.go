package sigpac

import (
	"fmt"
)

// Location identifies a parcel or enclosure in the registry hierarchy.
//
// Aggregate and Zone are 0 for almost every parcel. Community may be left
// unset; it is resolved from Province when needed.
type Location struct {
	Layer        Layer
	Community    int
	Province     int
	Municipality int
	Aggregate    int
	Zone         int
	Polygon      int
	Parcel       int
	Enclosure    int
}

// LocationFromReference returns the location a parsed reference points at.
// The layer is chosen with Reference.Layer.
func LocationFromReference(ref *Reference) Location {
	community, _ := ResolveCommunity(ref.Province())
	return Location{
		Layer:        ref.Layer(),
		Community:    community,
		Province:     ref.Province(),
		Municipality: ref.Municipality(),
		Polygon:      ref.Polygon(),
		Parcel:       ref.Parcel(),
		Enclosure:    ref.Enclosure(),
	}
}

// Validate checks that the location names everything its layer requires.
func (l Location) Validate() error {
	switch {
	case l.Layer == "":
		return &ErrInvalidLocation{Field: "layer", Reason: "not specified"}
	case !l.Layer.Valid():
		return &ErrInvalidLocation{
			Field:  "layer",
			Reason: fmt.Sprintf("%q not supported, want %q or %q", l.Layer, LayerParcel, LayerEnclosure),
		}
	case l.Province <= 0:
		return &ErrInvalidLocation{Field: "province", Reason: "not specified"}
	case l.Municipality <= 0:
		return &ErrInvalidLocation{Field: "municipality", Reason: "not specified"}
	case l.Polygon <= 0:
		return &ErrInvalidLocation{Field: "polygon", Reason: "not specified"}
	case l.Parcel <= 0:
		return &ErrInvalidLocation{Field: "parcel", Reason: "not specified"}
	case l.Layer == LayerEnclosure && l.Enclosure <= 0:
		return &ErrInvalidLocation{Field: "enclosure", Reason: "not specified"}
	case l.Aggregate < 0 || l.Zone < 0:
		return &ErrInvalidLocation{Field: "aggregate/zone", Reason: "must not be negative"}
	}
	return nil
}

// QueryPath returns the registry resource path of the location's
// information document, without the ".geojson" suffix.
//
//	parcela: recinfoparc/{province}/{municipality}/{aggregate}/{zone}/{polygon}/{parcel}
//	recinto: recinfo/{province}/{municipality}/{aggregate}/{zone}/{polygon}/{parcel}/{enclosure}
func (l Location) QueryPath() (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}

	if l.Layer == LayerEnclosure {
		return fmt.Sprintf("recinfo/%d/%d/%d/%d/%d/%d/%d",
			l.Province, l.Municipality, l.Aggregate, l.Zone, l.Polygon, l.Parcel, l.Enclosure), nil
	}
	return fmt.Sprintf("recinfoparc/%d/%d/%d/%d/%d/%d",
		l.Province, l.Municipality, l.Aggregate, l.Zone, l.Polygon, l.Parcel), nil
}

// SearchPath returns the registry listing one level below the most specific
// field set in l:
//
//	community     provincias/{community}
//	province      municipios/{province}
//	municipality  poligonos/{province}/{municipality}/0/0
//	polygon       parcelas/{province}/{municipality}/0/0/{polygon}
//	parcel        recintos/{province}/{municipality}/0/0/{polygon}/{parcel}
//
// The community is resolved from the province when unset. A location with
// neither fails with ErrUnknownRegion.
func (l Location) SearchPath() (string, error) {
	comm := l.Community
	if comm <= 0 {
		var err error
		if comm, err = CommunityFor(l.Province); err != nil {
			return "", err
		}
	}

	switch {
	case l.Province <= 0:
		return fmt.Sprintf("provincias/%d", comm), nil
	case l.Municipality <= 0:
		return fmt.Sprintf("municipios/%d", l.Province), nil
	case l.Polygon <= 0:
		return fmt.Sprintf("poligonos/%d/%d/0/0", l.Province, l.Municipality), nil
	case l.Parcel <= 0:
		return fmt.Sprintf("parcelas/%d/%d/0/0/%d", l.Province, l.Municipality, l.Polygon), nil
	default:
		return fmt.Sprintf("recintos/%d/%d/0/0/%d/%d", l.Province, l.Municipality, l.Polygon, l.Parcel), nil
	}
}
