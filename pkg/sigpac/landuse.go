package sigpac

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed landuse.yaml
var landUseYAML []byte

// LandUse is a land-use code with its catalogue description and, when part
// of a parcel breakdown, its aggregated surface in square meters.
type LandUse struct {
	Code        string  `json:"uso_sigpac" yaml:"code"`
	Description string  `json:"descripcion,omitempty" yaml:"description"`
	Surface     float64 `json:"dn_superficie,omitempty" yaml:"-"`
}

type landUseCatalog struct {
	LandUses []LandUse `yaml:"land_uses"`
}

var (
	landUses     map[string]string
	landUseCodes []string
	landUseErr   error
	landUseOnce  sync.Once
)

func loadLandUses() {
	var catalog landUseCatalog
	if err := yaml.Unmarshal(landUseYAML, &catalog); err != nil {
		landUseErr = fmt.Errorf("parse land-use catalogue: %w", err)
		return
	}

	landUses = make(map[string]string, len(catalog.LandUses))
	for _, u := range catalog.LandUses {
		landUses[u.Code] = u.Description
		landUseCodes = append(landUseCodes, u.Code)
	}
	sort.Strings(landUseCodes)
}

// LandUseDescription returns the Spanish description of a land-use code,
// e.g. "Tierra arable" for "TA".
func LandUseDescription(code string) (string, bool) {
	landUseOnce.Do(loadLandUses)
	desc, ok := landUses[code]
	return desc, ok
}

// LandUseCodes returns the catalogued land-use codes in alphabetical order.
func LandUseCodes() ([]string, error) {
	landUseOnce.Do(loadLandUses)
	if landUseErr != nil {
		return nil, landUseErr
	}
	out := make([]string, len(landUseCodes))
	copy(out, landUseCodes)
	return out, nil
}
