package encoding

import (
	"testing"

	"golang.org/x/text/encoding/korean"
)

func TestDecodeName_UTF8(t *testing.T) {
	if got := DecodeName([]byte("  icosphere \n")); got != "icosphere" {
		t.Errorf("DecodeName() = %q, want %q", got, "icosphere")
	}
	if got := DecodeName([]byte("프론테라")); got != "프론테라" {
		t.Errorf("DecodeName() = %q, want UTF-8 kept", got)
	}
}

func TestDecodeName_EUCKR(t *testing.T) {
	raw, err := korean.EUCKR.NewEncoder().Bytes([]byte("프론테라"))
	if err != nil {
		t.Fatalf("encoding test name: %v", err)
	}
	if got := DecodeName(raw); got != "프론테라" {
		t.Errorf("DecodeName(EUC-KR) = %q, want %q", got, "프론테라")
	}
}

func TestFixedRoundTrip(t *testing.T) {
	field := EncodeFixed("cube", 80)
	if len(field) != 80 {
		t.Fatalf("expected 80 bytes, got %d", len(field))
	}
	if got := DecodeFixed(field); got != "cube" {
		t.Errorf("DecodeFixed() = %q, want %q", got, "cube")
	}
}

func TestEncodeFixed_TruncatesOnRuneBoundary(t *testing.T) {
	// Each Hangul syllable is 3 bytes in UTF-8.
	field := EncodeFixed("프론테라", 7)
	if got := DecodeFixed(field); got != "프론" {
		t.Errorf("DecodeFixed() = %q, want %q", got, "프론")
	}
}
