package shared

import "math/rand"

// codeAlphabet holds the 34 characters room codes are drawn from.
// Digit 0 and letter l are excluded so codes stay unambiguous when
// read off someone else's phone screen.
const codeAlphabet = "123456789abcdefghijkmnopqrstuvwxyz"

// GenerateCode returns a random room code of exactly length characters,
// each drawn uniformly with replacement from [codeAlphabet].
//
// Lengths of zero or less produce the empty string. Codes are not
// checked for uniqueness against existing rooms; that is the caller's
// responsibility if desired.
func GenerateCode(length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
