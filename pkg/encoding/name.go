// Package encoding decodes names stored in model files.
//
// Model exporters write object names as UTF-8, but older Korean tools emit
// EUC-KR. Names that are not valid UTF-8 are decoded as EUC-KR.
package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// EUCKRToUTF8 converts EUC-KR encoded bytes to a UTF-8 string.
// Returns the input as-is if conversion fails.
func EUCKRToUTF8(data []byte) string {
	result, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(result)
}

// DecodeName converts a raw name to UTF-8. Valid UTF-8 is kept, anything
// else is decoded as EUC-KR. Surrounding whitespace is trimmed.
func DecodeName(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}
	return strings.TrimSpace(EUCKRToUTF8(data))
}

// DecodeFixed decodes a null-terminated name from a fixed-size field.
func DecodeFixed(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return DecodeName(data)
}

// EncodeFixed writes s as UTF-8 into a fixed-size field padded with null
// bytes. Names that do not fit are cut on a rune boundary.
func EncodeFixed(s string, size int) []byte {
	out := make([]byte, size)
	n := 0
	for _, r := range s {
		l := utf8.RuneLen(r)
		if l < 0 || n+l > size {
			break
		}
		n += utf8.EncodeRune(out[n:], r)
	}
	return out
}
