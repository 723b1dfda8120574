package cadastral

// controlAlphabet maps a weighted sum modulo 23 to a control character.
const controlAlphabet = "MQWERTYUIOPASDFGHJKLBZX"

// positionWeights are applied to each 7-character group (indices 0-6) and
// to the 4 enclosure digits (indices 7-10).
var positionWeights = [11]int{13, 15, 12, 5, 4, 17, 9, 21, 3, 7, 1}

// charValues is the character-to-value table used by the checksum.
// Digits map to themselves. Letters map to their alphabet position,
// shifted by one after N (O=16, not 15).
var charValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7,
	'H': 8, 'I': 9, 'J': 10, 'K': 11, 'L': 12, 'M': 13, 'N': 14,
	'O': 16, 'P': 17, 'Q': 18, 'R': 19, 'S': 20, 'T': 21, 'U': 22,
	'V': 23, 'W': 24, 'X': 25, 'Y': 26, 'Z': 27,
}

// charValue returns the checksum value of c. Lower-case letters and any
// other byte are not in the table.
func charValue(c byte) (int, bool) {
	v, ok := charValues[c]
	return v, ok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
