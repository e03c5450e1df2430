package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightGreen, "10"},
		{ColorGray, "245"},
		{Color(NumColors), ""},
	}
	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.expected)
		}
	}

	for c := ColorRed; int(c) < NumColors; c++ {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
