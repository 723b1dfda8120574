package sigpac

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, maxX, maxY float64) orb.Polygon {
	return orb.Polygon{{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY}}}
}

func testEnclosures() []Enclosure {
	return []Enclosure{
		{Geometry: box(0, 0, 1, 1), LandUse: "TA", Identity: EnclosureIdentity{Parcel: 10, Enclosure: 1}},
		{Geometry: box(1, 0, 2, 1), LandUse: "OV", Identity: EnclosureIdentity{Parcel: 10, Enclosure: 2}},
		{Geometry: orb.MultiPolygon{box(5, 5, 6, 6), box(8, 8, 9, 9)}, LandUse: "PS", Identity: EnclosureIdentity{Parcel: 11, Enclosure: 1}},
		{Geometry: nil, LandUse: "IM", Identity: EnclosureIdentity{Parcel: 12, Enclosure: 1}},
		// L-shaped outline: its bounding box covers (3.5, 3.5) but the polygon does not.
		{
			Geometry: orb.Polygon{{{2, 2}, {4, 2}, {4, 3}, {3, 3}, {3, 4}, {2, 4}, {2, 2}}},
			LandUse:  "VI",
			Identity: EnclosureIdentity{Parcel: 13, Enclosure: 1},
		},
	}
}

func TestEnclosureIndexLocate(t *testing.T) {
	idx := NewEnclosureIndex(testEnclosures())
	assert.Equal(t, 5, idx.Len())

	tests := []struct {
		name string
		lon  float64
		lat  float64
		want []string
	}{
		{"inside first", 0.5, 0.5, []string{"TA"}},
		{"inside second", 1.5, 0.5, []string{"OV"}},
		{"multipolygon member", 8.5, 8.5, []string{"PS"}},
		{"between multipolygon members", 7, 7, nil},
		{"L-shape arm", 2.5, 3.5, []string{"VI"}},
		{"L-shape notch", 3.5, 3.5, nil},
		{"outside", -1, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range idx.Locate(tt.lon, tt.lat) {
				got = append(got, e.LandUse)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnclosureIndexFind(t *testing.T) {
	idx := NewEnclosureIndex(testEnclosures())

	e, ok := idx.Find(LayerParcel, 11)
	require.True(t, ok)
	assert.Equal(t, "PS", e.LandUse)

	// First match wins.
	e, ok = idx.Find(LayerEnclosure, 2)
	require.True(t, ok)
	assert.Equal(t, "OV", e.LandUse)

	e, ok = idx.Find(LayerParcel, 12)
	require.True(t, ok)
	assert.Equal(t, "IM", e.LandUse)

	_, ok = idx.Find(LayerParcel, 99)
	assert.False(t, ok)

	_, ok = idx.Find(Layer("municipio"), 10)
	assert.False(t, ok)
}

func TestEnclosureIndexEmpty(t *testing.T) {
	idx := NewEnclosureIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Locate(0, 0))
}
