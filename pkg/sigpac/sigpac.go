package sigpac

import (
	"log/slog"

	"github.com/beetlebugorg/sigpac/internal/cadastral"
)

// Layer is a registry layer a reference or location resolves to.
type Layer string

const (
	// LayerParcel is the parcel layer ("parcela").
	LayerParcel Layer = "parcela"
	// LayerEnclosure is the enclosure layer ("recinto").
	LayerEnclosure Layer = "recinto"
)

// Valid reports whether l is a registry layer this package can query.
func (l Layer) Valid() bool {
	return l == LayerParcel || l == LayerEnclosure
}

// Kind classifies a reference as rural or urban.
type Kind = cadastral.Kind

const (
	KindRural = cadastral.KindRural
	KindUrban = cadastral.KindUrban
)

// Fields holds the components of a reference to build. A zero Section
// means 'A'.
type Fields = cadastral.Fields

// Codec validates, decomposes and synthesizes rural cadastral references.
//
// Create a codec with NewCodec. Codecs hold no mutable state and are safe
// for concurrent use.
type Codec interface {
	// Parse normalizes raw (upper-case, whitespace removed) and decodes it.
	//
	// Errors are checked in order: length (ErrFormat), urban section
	// (ErrUnsupportedDomain), control characters (ErrInvalidChecksum).
	Parse(raw string) (*Reference, error)

	// Build returns the 20-character reference for f. Values wider than
	// their field fail with ErrFormat.
	Build(f Fields) (string, error)

	// BuildFromLabels is Build for "ID-NAME" labels such as "26-La Rioja".
	// Only the leading ID is used.
	BuildFromLabels(province, municipality, polygon, parcel string) (string, error)

	// Checksum returns the two control characters of an 18-character
	// payload. The payload is not normalized.
	Checksum(payload string) (string, error)

	// Validate reports whether raw is a valid rural reference.
	Validate(raw string) error
}

// NewCodec creates a codec. A nil logger uses slog.Default().
//
// Example:
//
//	codec := sigpac.NewCodec(nil)
//	ref, err := codec.Parse("06 001 a 028 000 38 0000 lh")
func NewCodec(logger *slog.Logger) Codec {
	if logger == nil {
		logger = slog.Default()
	}
	return &codecWrapper{logger: logger}
}

// codecWrapper wraps the internal codec and converts types
type codecWrapper struct {
	logger *slog.Logger
}

func (c *codecWrapper) Parse(raw string) (*Reference, error) {
	ref, err := cadastral.Parse(raw)
	if err != nil {
		c.logger.Debug("Rejected cadastral reference", "input", raw, "error", err)
		return nil, err
	}
	c.logger.Debug("Parsed cadastral reference", "reference", ref.String(), "kind", cadastral.KindRural)
	return convertReference(ref), nil
}

func (c *codecWrapper) Build(f Fields) (string, error) {
	return cadastral.Build(f)
}

func (c *codecWrapper) BuildFromLabels(province, municipality, polygon, parcel string) (string, error) {
	return cadastral.BuildFromLabels(province, municipality, polygon, parcel)
}

func (c *codecWrapper) Checksum(payload string) (string, error) {
	return cadastral.Checksum(payload)
}

func (c *codecWrapper) Validate(raw string) error {
	_, err := c.Parse(raw)
	return err
}

// Classify reports whether raw, once normalized, is shaped like a rural or
// an urban reference. It does not validate length or control characters.
func Classify(raw string) Kind {
	return cadastral.Classify(cadastral.Normalize(raw))
}

// Reference is a parsed rural cadastral reference.
//
// References are immutable; use the accessor methods to read fields.
type Reference struct {
	province     int
	municipality int
	section      byte
	polygon      int
	parcel       int
	enclosure    int
	control      string
}

func convertReference(r *cadastral.Reference) *Reference {
	return &Reference{
		province:     r.Province,
		municipality: r.Municipality,
		section:      r.Section,
		polygon:      r.Polygon,
		parcel:       r.Parcel,
		enclosure:    r.Enclosure,
		control:      r.Control,
	}
}

// Province returns the province code (1-99).
func (r *Reference) Province() int { return r.province }

// Municipality returns the municipality code.
func (r *Reference) Municipality() int { return r.municipality }

// Section returns the section letter.
func (r *Reference) Section() string { return string(r.section) }

// Polygon returns the polygon number.
func (r *Reference) Polygon() int { return r.polygon }

// Parcel returns the parcel number.
func (r *Reference) Parcel() int { return r.parcel }

// Enclosure returns the enclosure id, 0 when the reference names a whole parcel.
func (r *Reference) Enclosure() int { return r.enclosure }

// Control returns the two control characters.
func (r *Reference) Control() string { return r.control }

// Layer returns the registry layer the reference resolves to: the enclosure
// layer when it carries an enclosure id, otherwise the parcel layer.
func (r *Reference) Layer() Layer {
	if r.enclosure != 0 {
		return LayerEnclosure
	}
	return LayerParcel
}

// String returns the normalized 20-character reference.
func (r *Reference) String() string {
	return r.internal().String()
}

// Fields returns the fields the reference was built from.
func (r *Reference) Fields() Fields {
	return Fields{
		Province:     r.province,
		Municipality: r.municipality,
		Polygon:      r.polygon,
		Parcel:       r.parcel,
		Enclosure:    r.enclosure,
		Section:      r.section,
	}
}

// Community returns the autonomous community of the reference's province.
func (r *Reference) Community() (int, error) {
	return CommunityFor(r.province)
}

func (r *Reference) internal() *cadastral.Reference {
	return &cadastral.Reference{
		Province:     r.province,
		Municipality: r.municipality,
		Section:      r.section,
		Polygon:      r.polygon,
		Parcel:       r.parcel,
		Enclosure:    r.enclosure,
		Control:      r.control,
	}
}
