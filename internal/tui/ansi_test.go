package tui

import "testing"

func TestStripANSIEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"\x1b[1mbold\x1b[0m", "bold"},
		{"\x1b[38;5;245mgray\x1b[m", "gray"},
		{"a\x1b[2Kb", "ab"},
	}
	for _, c := range cases {
		if got := stripANSIEscapes(c.in); got != c.want {
			t.Fatalf("stripANSIEscapes(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
