package common

import (
	"encoding/binary"
	"unicode/utf8"
)

// Fixed-width string values are stored as little-endian UTF-32, one
// 4-byte group per character, right-padded with NUL characters to the
// declared width. The pool keeps that padded form as the interned
// content; dynamic string columns intern the raw UTF-8 text instead.

const Utf32CharSize = 4

// AsciiToPaddedUtf32 expands an ASCII string to padded UTF-32 at the
// given character width. The second return is false when the value does
// not fit the width or contains non-ASCII bytes, in which case no stored
// value of this width can ever equal it.
func AsciiToPaddedUtf32(s string, width int) (string, bool) {
	if len(s) > width {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return "", false
		}
	}
	buf := make([]byte, Utf32CharSize*width)
	for i := 0; i < len(s); i++ {
		buf[Utf32CharSize*i] = s[i]
	}
	return string(buf), true
}

// Utf32ToLogical decodes padded UTF-32 content back to UTF-8 text with
// the trailing NUL padding stripped. Content whose length is not a
// multiple of the character size is returned unchanged.
func Utf32ToLogical(content string) string {
	if len(content)%Utf32CharSize != 0 {
		return content
	}
	chars := len(content) / Utf32CharSize
	for chars > 0 {
		g := binary.LittleEndian.Uint32([]byte(content[(chars-1)*Utf32CharSize : chars*Utf32CharSize]))
		if g != 0 {
			break
		}
		chars--
	}
	buf := make([]byte, 0, chars*utf8.UTFMax)
	for i := 0; i < chars; i++ {
		g := binary.LittleEndian.Uint32([]byte(content[i*Utf32CharSize : (i+1)*Utf32CharSize]))
		buf = utf8.AppendRune(buf, rune(g))
	}
	return string(buf)
}

// PaddedWidthOf reports how many characters a padded UTF-32 content
// string holds, including the padding.
func PaddedWidthOf(content string) int {
	return len(content) / Utf32CharSize
}
