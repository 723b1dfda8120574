package cadastral

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a reference by the character at the section position.
type Kind int

const (
	// KindRural references carry a letter section. The only supported kind.
	KindRural Kind = iota
	// KindUrban references carry a digit in the section position.
	KindUrban
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindRural:
		return "RURAL"
	case KindUrban:
		return "URBAN"
	default:
		return "UNKNOWN"
	}
}

// field describes one fixed-width numeric field of the payload.
type field struct {
	name   string
	offset int
	width  int
}

var (
	provinceField     = field{"province", 0, 2}
	municipalityField = field{"municipality", 2, 3}
	polygonField      = field{"polygon", 6, 3}
	parcelField       = field{"parcel", 9, 5}
	enclosureField    = field{"enclosure", 14, 4}
)

// DefaultSection is the section letter used when building references.
const DefaultSection byte = 'A'

// Reference is a parsed rural cadastral reference.
//
// Layout (20 characters):
//
//	PP MMM S PPP PPPPP EEEE CC
//	|  |   | |   |     |    control characters
//	|  |   | |   |     enclosure (0 when absent)
//	|  |   | |   parcel
//	|  |   | polygon
//	|  |   section (letter for rural)
//	|  municipality
//	province
type Reference struct {
	Province     int
	Municipality int
	Section      byte
	Polygon      int
	Parcel       int
	Enclosure    int
	Control      string
}

// Payload returns the 18-character payload the control characters are computed from.
func (r *Reference) Payload() string {
	return fmt.Sprintf("%02d%03d%c%03d%05d%04d",
		r.Province, r.Municipality, r.Section, r.Polygon, r.Parcel, r.Enclosure)
}

// String returns the full 20-character reference.
func (r *Reference) String() string {
	return r.Payload() + r.Control
}

// HasEnclosure reports whether the reference points at a single enclosure.
func (r *Reference) HasEnclosure() bool {
	return r.Enclosure != 0
}

// Normalize upper-cases raw and removes all whitespace, including internal spaces.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
}

// Classify reports the kind of a normalized reference or payload.
// Strings too short to carry a section are reported as rural; length
// is checked by Parse and Checksum.
func Classify(normalized string) Kind {
	if len(normalized) > sectionOffset && isDigit(normalized[sectionOffset]) {
		return KindUrban
	}
	return KindRural
}

// Parse normalizes raw and decodes it into a Reference.
//
// Checks run in order: length (ErrFormat), urban classification
// (ErrUnsupportedDomain), control characters (ErrInvalidChecksum), numeric
// fields (ErrFormat). An urban reference is rejected even when its control
// characters would match.
func Parse(raw string) (*Reference, error) {
	ref := Normalize(raw)
	if n := utf8.RuneCountInString(ref); n != ReferenceLength {
		return nil, &ErrFormat{
			Input:  raw,
			Reason: fmt.Sprintf("must be %d characters, got %d", ReferenceLength, n),
		}
	}
	if len(ref) != ReferenceLength {
		return nil, &ErrFormat{Input: raw, Reason: "must contain only ASCII characters"}
	}

	if Classify(ref) == KindUrban {
		return nil, &ErrUnsupportedDomain{Reference: ref}
	}

	expected, err := Checksum(ref[:PayloadLength])
	if err != nil {
		return nil, err
	}
	actual := ref[PayloadLength:]
	if expected != actual {
		return nil, &ErrInvalidChecksum{Reference: ref, Expected: expected, Actual: actual}
	}

	out := &Reference{
		Section: ref[sectionOffset],
		Control: actual,
	}
	targets := []struct {
		f   field
		dst *int
	}{
		{provinceField, &out.Province},
		{municipalityField, &out.Municipality},
		{polygonField, &out.Polygon},
		{parcelField, &out.Parcel},
		{enclosureField, &out.Enclosure},
	}
	for _, t := range targets {
		v, err := readField(ref, t.f)
		if err != nil {
			return nil, err
		}
		*t.dst = v
	}

	return out, nil
}

func readField(ref string, f field) (int, error) {
	s := ref[f.offset : f.offset+f.width]
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, &ErrFormat{
				Input:  ref,
				Reason: fmt.Sprintf("%s %q is not numeric", f.name, s),
			}
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ErrFormat{Input: ref, Reason: fmt.Sprintf("%s %q: %v", f.name, s, err)}
	}
	return v, nil
}

// Fields holds the inputs of Build. A zero Section means DefaultSection.
type Fields struct {
	Province     int
	Municipality int
	Polygon      int
	Parcel       int
	Enclosure    int
	Section      byte
}

// Build synthesizes a rural reference from its fields, zero-padding each one
// and appending the computed control characters.
//
// Values that do not fit their field width fail with ErrFormat rather than
// being truncated. A digit section fails with ErrUnsupportedDomain.
func Build(f Fields) (string, error) {
	section := f.Section
	if section == 0 {
		section = DefaultSection
	}
	if isDigit(section) {
		return "", &ErrUnsupportedDomain{Reference: fmt.Sprintf("section %c", section)}
	}
	if !isUpperLetter(section) {
		return "", &ErrFormat{Reason: fmt.Sprintf("section %q must be a letter A-Z", section)}
	}

	if f.Province < 1 || f.Province > 99 {
		return "", &ErrFormat{Reason: fmt.Sprintf("province %d must be between 1 and 99", f.Province)}
	}
	checks := []struct {
		f     field
		value int
	}{
		{municipalityField, f.Municipality},
		{polygonField, f.Polygon},
		{parcelField, f.Parcel},
		{enclosureField, f.Enclosure},
	}
	for _, c := range checks {
		if err := fitsWidth(c.f, c.value); err != nil {
			return "", err
		}
	}

	ref := Reference{
		Province:     f.Province,
		Municipality: f.Municipality,
		Section:      section,
		Polygon:      f.Polygon,
		Parcel:       f.Parcel,
		Enclosure:    f.Enclosure,
	}
	control, err := Checksum(ref.Payload())
	if err != nil {
		return "", err
	}
	ref.Control = control

	return ref.String(), nil
}

func fitsWidth(f field, value int) error {
	limit := 1
	for i := 0; i < f.width; i++ {
		limit *= 10
	}
	if value < 0 || value >= limit {
		return &ErrFormat{
			Reason: fmt.Sprintf("%s %d does not fit in %d digits", f.name, value, f.width),
		}
	}
	return nil
}

// BuildFromLabels builds a reference from textual codes. Each code may be an
// "ID-NAME" label (e.g. "26-La Rioja"); only the leading id is used.
func BuildFromLabels(province, municipality, polygon, parcel string) (string, error) {
	var f Fields
	labels := []struct {
		name  string
		label string
		dst   *int
	}{
		{"province", province, &f.Province},
		{"municipality", municipality, &f.Municipality},
		{"polygon", polygon, &f.Polygon},
		{"parcel", parcel, &f.Parcel},
	}

	for _, l := range labels {
		id, _, _ := strings.Cut(l.label, "-")
		id = strings.TrimSpace(id)
		v, err := strconv.Atoi(id)
		if err != nil {
			return "", &ErrFormat{Reason: fmt.Sprintf("%s label %q has no numeric id", l.name, l.label)}
		}
		*l.dst = v
	}

	return Build(f)
}
