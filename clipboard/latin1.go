package clipboard

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Buffers hold one byte per character, interpreted as Latin-1. Clipboard
// text is UTF-8. Text is NFC-composed first, so "e" + U+0301 becomes the
// single Latin-1 character "é". Each user-perceived character that still
// does not fit Latin-1 becomes one byte: its base letter when that is
// Latin-1 (combining marks dropped), otherwise '?'.

// Encode converts UTF-8 clipboard text into buffer bytes.
func Encode(text string) []byte {
	var b strings.Builder
	g := uniseg.NewGraphemes(norm.NFC.String(text))
	for g.Next() {
		writeCluster(&b, g.Runes())
	}

	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(b.String()))
	if err != nil {
		// Every rune written above is Latin-1; not reached.
		return []byte(b.String())
	}
	return out
}

// writeCluster writes one grapheme cluster. Clusters made only of Latin-1
// runes, such as "\r\n", are kept whole.
func writeCluster(b *strings.Builder, cluster []rune) {
	latin1 := true
	for _, r := range cluster {
		if r > 0xFF {
			latin1 = false
			break
		}
	}
	switch {
	case latin1:
		for _, r := range cluster {
			b.WriteRune(r)
		}
	case cluster[0] <= 0xFF:
		b.WriteRune(cluster[0])
	default:
		b.WriteByte('?')
	}
}

// Decode converts buffer bytes into UTF-8 clipboard text.
func Decode(p []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
	if err != nil {
		return string(p)
	}
	return string(out)
}
