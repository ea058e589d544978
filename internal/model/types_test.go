package model

import "testing"

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#11707C")
	if err != nil {
		t.Fatalf("parse color: %v", err)
	}
	if c.Hex() != "#11707c" {
		t.Fatalf("unexpected round trip %s", c.Hex())
	}
	if _, err := ParseColor("teal"); err == nil {
		t.Fatalf("expected error for a named color")
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Button.Hex() != "#11707c" {
		t.Fatalf("unexpected button color %s", p.Button.Hex())
	}
}
