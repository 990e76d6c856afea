package util

import "testing"

func TestPrincipalKey(t *testing.T) {
	guest := PrincipalKey("guest:browser-1")
	if guest != PrincipalKey("  guest:browser-1 ") {
		t.Fatalf("expected whitespace to be ignored")
	}
	if guest == PrincipalKey("guest:browser-2") {
		t.Fatalf("expected distinct principals to differ")
	}
	if len(guest) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(guest))
	}
	for _, ch := range guest {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("key contains non-hex character: %c", ch)
		}
	}
}
