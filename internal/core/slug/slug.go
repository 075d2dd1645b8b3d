// Package slug derives filesystem-safe reminder filenames from free-form text.
package slug

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode"
)

// Extension is the filename extension shared by all reminder files.
const Extension = ".rem"

// DefaultMaxBase is the default maximum basename length, not counting the extension.
const DefaultMaxBase = 10

// counterWidth is the minimum width of the zero-padded collision counter.
const counterWidth = 3

// fallbackBase names a reminder whose text is empty.
const fallbackBase = "noname"

// ErrSlugExhausted is returned when no unused filename can be composed
// within the length limit.
var ErrSlugExhausted = errors.New("slug: no unused filename available")

// Derive maps reminder text to an unused filename of the form base+".rem".
//
// The base keeps only the letters and digits of text, truncated to maxBase
// runes. Text that leaves an empty or all-digit base (all-digit basenames are
// reserved for index references) falls back to a SHA-1 prefix of the text, or
// to "noname" when the text itself is empty. Collisions against existing are
// resolved with a zero-padded counter replacing the tail of the base.
func Derive(text string, existing map[string]struct{}, maxBase int) (string, error) {
	if maxBase <= 0 {
		maxBase = DefaultMaxBase
	}

	base := alphanumeric(text)
	if len(base) > maxBase {
		base = base[:maxBase]
	}
	if len(base) == 0 || allDigits(base) {
		base = hashBase(text, maxBase)
	}

	name := string(base) + Extension
	if _, taken := existing[name]; !taken {
		return name, nil
	}

	for n := 0; ; n++ {
		suffix := fmt.Sprintf("%0*d", counterWidth, n)
		room := maxBase - len(suffix)
		if room < 1 {
			// A shorter base would leave an all-digit name.
			return "", ErrSlugExhausted
		}
		prefix := base
		if len(prefix) > room {
			prefix = prefix[:room]
		}
		name = string(prefix) + suffix + Extension
		if _, taken := existing[name]; !taken {
			return name, nil
		}
	}
}

// alphanumeric strips every rune that is not a Unicode letter or digit,
// preserving the order of the rest.
func alphanumeric(text string) []rune {
	kept := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// hashBase builds a fallback base from a SHA-1 of the original text.
func hashBase(text string, maxBase int) []rune {
	if len(text) == 0 {
		base := []rune(fallbackBase)
		if len(base) > maxBase {
			base = base[:maxBase]
		}
		return base
	}

	sum := sha1.Sum([]byte(text))
	digest := hex.EncodeToString(sum[:])
	if len(digest) > maxBase {
		digest = digest[:maxBase]
	}
	base := []rune(digest)
	if allDigits(base) {
		// All-digit names are reserved for index references.
		base[0] = 'x'
	}
	return base
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}
