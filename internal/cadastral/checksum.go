package cadastral

import (
	"fmt"
)

const (
	// PayloadLength is the length of a reference without its control characters.
	PayloadLength = 18
	// ReferenceLength is the full length of a rural cadastral reference.
	ReferenceLength = 20
	// sectionOffset is the position of the section character.
	sectionOffset = 5
)

// Checksum computes the two control characters for an 18-character rural payload
// (province, municipality, section, polygon, parcel, enclosure).
//
// The payload is used as given: callers normalize case and whitespace first.
// Urban payloads (digit at the section position) fail with ErrUnsupportedDomain,
// since their layout uses a different scheme.
func Checksum(payload string) (string, error) {
	if len(payload) != PayloadLength {
		return "", &ErrFormat{
			Input:  payload,
			Reason: fmt.Sprintf("payload must be %d characters, got %d", PayloadLength, len(payload)),
		}
	}
	if isDigit(payload[sectionOffset]) {
		return "", &ErrUnsupportedDomain{Reference: payload}
	}

	sumA, err := weightedSum(payload, 0)
	if err != nil {
		return "", err
	}
	sumB, err := weightedSum(payload, 7)
	if err != nil {
		return "", err
	}

	// Enclosure digits use weights 7-10 and are always read as digits
	mixt := 0
	for i := 0; i < 4; i++ {
		c := payload[14+i]
		if !isDigit(c) {
			return "", &ErrFormat{
				Input:  payload,
				Reason: fmt.Sprintf("enclosure character %q at position %d is not a digit", c, 14+i),
			}
		}
		mixt += positionWeights[7+i] * int(c-'0')
	}

	code1 := controlAlphabet[(sumA+mixt)%len(controlAlphabet)]
	code2 := controlAlphabet[(sumB+mixt)%len(controlAlphabet)]

	return string([]byte{code1, code2}), nil
}

// weightedSum sums 7 characters starting at offset using weights 0-6.
func weightedSum(payload string, offset int) (int, error) {
	sum := 0
	for i := 0; i < 7; i++ {
		c := payload[offset+i]
		v, ok := charValue(c)
		if !ok {
			return 0, &ErrFormat{
				Input:  payload,
				Reason: fmt.Sprintf("character %q at position %d is not alphanumeric upper-case", c, offset+i),
			}
		}
		sum += positionWeights[i] * v
	}
	return sum, nil
}
