package memory

import (
	"strings"
	"unicode"
)

// cleanGameboyTitle turns the raw header title into something printable:
// NUL bytes become spaces, non printable bytes become '?' and the result is
// trimmed. An empty title becomes "(Untitled)".
func cleanGameboyTitle(titleBytes []byte) string {
	runes := make([]rune, 0, len(titleBytes))

	for _, b := range titleBytes {
		r := rune(b)
		switch {
		case r == 0:
			r = ' '
		case r > unicode.MaxASCII || !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}

	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(Untitled)"
	}

	return title
}

// headerChecksum computes the checksum of bytes 0x134-0x14C, as verified by
// the boot ROM.
func headerChecksum(data []byte) byte {
	var sum byte
	for _, b := range data[titleAddress:headerChecksumAddress] {
		sum = sum - b - 1
	}
	return sum
}
