package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"C3441325110553", "C3441325110553"},
		{"  spaced  ", "spaced"},
		{"a/b\\c:d*e", "a-b-c-d-e"},
		{"what?\"<>|", "what"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizePathSegmentFallback(t *testing.T) {
	for _, in := range []string{"", "   ", ".", "..", "?|"} {
		if got := SanitizePathSegment(in, "UnknownSerial"); got != "UnknownSerial" {
			t.Errorf("SanitizePathSegment(%q) = %q, want fallback", in, got)
		}
	}
	if got := SanitizePathSegment("../etc", "x"); got != "..-etc" {
		t.Errorf("SanitizePathSegment(../etc) = %q", got)
	}
}
