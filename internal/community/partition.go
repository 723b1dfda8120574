// Package community maps Spanish provinces to their autonomous community.
package community

import (
	"fmt"
	"slices"
)

// partition lists the provinces of each autonomous community, using the INE
// province codes. Read-only.
var partition = []struct {
	community int
	provinces []int
}{
	{1, []int{4, 11, 14, 18, 21, 23, 29, 41}},    // Andalucía
	{2, []int{22, 44, 50}},                       // Aragón
	{3, []int{33}},                               // Principado de Asturias
	{4, []int{7}},                                // Illes Balears
	{5, []int{35, 38}},                           // Canarias
	{6, []int{39}},                               // Cantabria
	{7, []int{5, 9, 24, 34, 37, 40, 42, 47, 49}}, // Castilla y León
	{8, []int{2, 13, 16, 19, 45}},                // Castilla-La Mancha
	{9, []int{8, 17, 25, 43}},                    // Cataluña
	{10, []int{3, 12, 46}},                       // Comunitat Valenciana
	{11, []int{6, 10}},                           // Extremadura
	{12, []int{15, 27, 32, 36}},                  // Galicia
	{13, []int{28}},                              // Comunidad de Madrid
	{14, []int{30}},                              // Región de Murcia
	{15, []int{31}},                              // Comunidad Foral de Navarra
	{16, []int{1, 20, 48}},                       // País Vasco
	{17, []int{26}},                              // La Rioja
	{18, []int{51}},                              // Ceuta
	{19, []int{52}},                              // Melilla
}

// Count is the number of communities in the partition.
const Count = 19

// ErrUnknownRegion indicates a province with no registered community.
type ErrUnknownRegion struct {
	Province int
}

func (e *ErrUnknownRegion) Error() string {
	return fmt.Sprintf("no community registered for province %d", e.Province)
}

// Resolve returns the community containing province. The second result is
// false when no community contains it; callers decide whether that is fatal.
func Resolve(province int) (int, bool) {
	for _, entry := range partition {
		if slices.Contains(entry.provinces, province) {
			return entry.community, true
		}
	}
	return 0, false
}

// MustResolve is Resolve for callers that require a community.
func MustResolve(province int) (int, error) {
	community, ok := Resolve(province)
	if !ok {
		return 0, &ErrUnknownRegion{Province: province}
	}
	return community, nil
}

// Provinces returns a copy of the provinces in community, or nil if the
// community id is unknown.
func Provinces(community int) []int {
	for _, entry := range partition {
		if entry.community == community {
			return slices.Clone(entry.provinces)
		}
	}
	return nil
}
