package client

import (
	"net/url"
	"strings"
	"testing"
)

func TestEncodePathSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pancakes", "Pancakes"},
		{"", ""},
		{"Mac & Cheese", "Mac%20%26%20Cheese"},
		{"a/b", "a%2Fb"},
		{"why?", "why%3F"},
		{"#1", "%231"},
		{"100%", "100%25"},
		{"a+b=c", "a%2Bb%3Dc"},
		{"x:y@z,w;v$", "x%3Ay%40z%2Cw%3Bv%24"},
		{"keep-_.!~*'()", "keep-_.!~*'()"},
		{"é", "%C3%A9"},
		{".", "%2E"},
		{"..", "%2E%2E"},
		{"...", "..."},
		{"a..b", "a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EncodePathSegment(tt.in); got != tt.want {
				t.Errorf("EncodePathSegment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodePathSegment_RoundTrip(t *testing.T) {
	inputs := []string{"Mac & Cheese", "a/b/c", "Q? #hash", "50% off", "日本の料理", " leading and trailing "}

	for _, in := range inputs {
		enc := EncodePathSegment(in)
		if strings.ContainsAny(enc, "/?# &") {
			t.Errorf("EncodePathSegment(%q) = %q contains a reserved character", in, enc)
		}
		dec, err := url.PathUnescape(enc)
		if err != nil {
			t.Fatalf("PathUnescape(%q) failed: %v", enc, err)
		}
		if dec != in {
			t.Errorf("round trip of %q gave %q", in, dec)
		}
	}
}

func TestInstructionsPath(t *testing.T) {
	if got := InstructionsPath("Pancakes"); got != "/recipe/Pancakes/instructions" {
		t.Errorf("InstructionsPath = %q", got)
	}
	if got := RecipePath("Salt/Pepper"); got != "/recipe/Salt%2FPepper" {
		t.Errorf("RecipePath = %q", got)
	}
}
