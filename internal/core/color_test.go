package core

import "testing"

func TestParseColorRoundTrip(t *testing.T) {
	for _, c := range Colors() {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v", c.String(), got, ok, c)
		}
	}

	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
	if Color(200).String() != "unknown" {
		t.Error("Unknown color should stringify as \"unknown\"")
	}
}
