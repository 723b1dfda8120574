package enclosure

import "slices"

// ParcelInfo is the identity record of an aggregated parcel.
type ParcelInfo struct {
	Province     int `json:"provincia"`
	Municipality int `json:"municipio"`
	Aggregate    int `json:"agregado"`
	Polygon      int `json:"poligono"`
	Parcel       int `json:"parcela"`
	// Zone and Enclosure are only reported for single-enclosure results.
	Zone      *int `json:"zona,omitempty"`
	Enclosure *int `json:"recinto,omitempty"`
	// CadastralRef is always empty; the registry does not link the
	// urban cadastre.
	CadastralRef string  `json:"referencia_cat"`
	TotalSurface float64 `json:"dn_surface"`
}

// QueryEntry is the per-enclosure record of a summary.
type QueryEntry struct {
	Admissibility     interface{} `json:"admisibilidad"`
	Altitude          interface{} `json:"altitud"`
	IrrigationCoef    interface{} `json:"coef_regadio"`
	Incidents         interface{} `json:"incidencias"`
	Slope             interface{} `json:"pendiente_media"`
	Enclosure         interface{} `json:"recinto"`
	Region            interface{} `json:"region"`
	LandUse           *string     `json:"uso_sigpac"`
	Surface           float64     `json:"dn_surface"`
	IncidentText      *string     `json:"inctexto"`
	AdmissibleSurface float64     `json:"superficie_admisible"`
}

// LandUseArea is the area of all enclosures sharing a land-use code.
type LandUseArea struct {
	Code              string  `json:"uso_sigpac"`
	Surface           float64 `json:"dn_superficie"`
	AdmissibleSurface float64 `json:"superficie_admisible"`
}

// Summary is the parcel-level metadata produced by Aggregate. Its JSON form
// matches the registry's parcel information document; members the registry
// fills but aggregation cannot derive are always null.
type Summary struct {
	Trees       interface{}   `json:"arboles"`
	Convergence interface{}   `json:"convergencia"`
	ID          interface{}   `json:"id"`
	IsEnclosure interface{}   `json:"isRecin"`
	ParcelInfo  ParcelInfo    `json:"parcelaInfo"`
	Query       []QueryEntry  `json:"query"`
	LandUses    []LandUseArea `json:"usos"`
	Validity    interface{}   `json:"vigencia"`
	Flight      interface{}   `json:"vuelo"`
}

// LandUse returns the aggregated area for code.
func (s *Summary) LandUse(code string) (float64, bool) {
	for _, u := range s.LandUses {
		if u.Code == code {
			return u.Surface, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of s. Attribute values are registry scalars and
// are shared.
func (s *Summary) Clone() Summary {
	out := *s
	out.ParcelInfo.Zone = clonePtr(s.ParcelInfo.Zone)
	out.ParcelInfo.Enclosure = clonePtr(s.ParcelInfo.Enclosure)
	out.LandUses = slices.Clone(s.LandUses)
	out.Query = slices.Clone(s.Query)
	for i := range out.Query {
		out.Query[i].LandUse = clonePtr(out.Query[i].LandUse)
		out.Query[i].IncidentText = clonePtr(out.Query[i].IncidentText)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func newQueryEntry(f *Feature) QueryEntry {
	entry := QueryEntry{
		Admissibility:     f.Attributes[PropAdmissibility],
		Altitude:          f.Attributes[PropAltitude],
		IrrigationCoef:    f.Attributes[PropIrrigationCoef],
		Incidents:         f.Attributes[PropIncidents],
		Slope:             f.Attributes[PropSlope],
		Enclosure:         f.Attributes[PropEnclosure],
		Region:            f.Attributes[PropRegion],
		Surface:           f.Surface,
		AdmissibleSurface: f.Surface,
	}
	if f.LandUse != "" {
		code := f.LandUse
		entry.LandUse = &code
	}
	return entry
}
