package sigpac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationQueryPath(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{
			name: "parcel",
			loc:  Location{Layer: LayerParcel, Province: 29, Municipality: 8, Polygon: 8, Parcel: 572},
			want: "recinfoparc/29/8/0/0/8/572",
		},
		{
			name: "enclosure",
			loc:  Location{Layer: LayerEnclosure, Province: 29, Municipality: 8, Polygon: 8, Parcel: 572, Enclosure: 3},
			want: "recinfo/29/8/0/0/8/572/3",
		},
		{
			name: "aggregate and zone",
			loc:  Location{Layer: LayerParcel, Province: 6, Municipality: 2, Aggregate: 1, Zone: 4, Polygon: 1, Parcel: 1},
			want: "recinfoparc/6/2/1/4/1/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.QueryPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationValidate(t *testing.T) {
	valid := Location{Layer: LayerParcel, Province: 29, Municipality: 8, Polygon: 8, Parcel: 572}

	tests := []struct {
		name  string
		edit  func(l *Location)
		field string
	}{
		{"missing layer", func(l *Location) { l.Layer = "" }, "layer"},
		{"unknown layer", func(l *Location) { l.Layer = "municipio" }, "layer"},
		{"missing province", func(l *Location) { l.Province = 0 }, "province"},
		{"missing municipality", func(l *Location) { l.Municipality = 0 }, "municipality"},
		{"missing polygon", func(l *Location) { l.Polygon = 0 }, "polygon"},
		{"missing parcel", func(l *Location) { l.Parcel = 0 }, "parcel"},
		{"enclosure layer without enclosure", func(l *Location) { l.Layer = LayerEnclosure }, "enclosure"},
		{"negative zone", func(l *Location) { l.Zone = -1 }, "aggregate/zone"},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := valid
			tt.edit(&loc)

			_, err := loc.QueryPath()
			var invalid *ErrInvalidLocation
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestLocationSearchPath(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"community", Location{Community: 2}, "provincias/2"},
		{"province", Location{Province: 6}, "municipios/6"},
		{"municipality", Location{Province: 6, Municipality: 2}, "poligonos/6/2/0/0"},
		{"polygon", Location{Province: 6, Municipality: 2, Polygon: 1}, "parcelas/6/2/0/0/1"},
		{"parcel", Location{Province: 6, Municipality: 2, Polygon: 1, Parcel: 1}, "recintos/6/2/0/0/1/1"},
		{"explicit community", Location{Community: 11, Province: 6}, "municipios/6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loc.SearchPath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationSearchPathUnknownRegion(t *testing.T) {
	for _, loc := range []Location{{}, {Province: 60}} {
		_, err := loc.SearchPath()
		var unknown *ErrUnknownRegion
		assert.True(t, errors.As(err, &unknown), "%+v: got %v", loc, err)
	}
}

func TestLocationFromReference(t *testing.T) {
	codec := NewCodec(nil)

	ref, err := codec.Parse("29008A008005720003YR")
	require.NoError(t, err)

	loc := LocationFromReference(ref)
	assert.Equal(t, Location{
		Layer:        LayerEnclosure,
		Community:    1,
		Province:     29,
		Municipality: 8,
		Polygon:      8,
		Parcel:       572,
		Enclosure:    3,
	}, loc)

	path, err := loc.QueryPath()
	require.NoError(t, err)
	assert.Equal(t, "recinfo/29/8/0/0/8/572/3", path)
}
