package util

import (
	"strings"
	"testing"
)

func TestHashUserKeyStable(t *testing.T) {
	a := HashUserKey("jobseeker-1")
	b := HashUserKey("jobseeker-1")
	if a != b {
		t.Fatalf("expected stable hash, got %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{"  my resume.pdf ", "my resume.pdf", false},
		{"a/b.pdf", "a_b.pdf", false},
		{"../../etc/passwd", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want || strings.Contains(got, "/") {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}
