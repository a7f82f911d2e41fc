package textutil

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Demo", "Demo"},
		{"spaces collapse", "My  Cool   Game", "My-Cool-Game"},
		{"punctuation stripped", "Yume Nikki: The Dream!", "Yume-Nikki-The-Dream"},
		{"accents reduced", "Café Mémoire", "Cafe-Memoire"},
		{"dash runs collapse", "a - b -- c", "a-b-c"},
		{"underscores kept", "ib_remake", "ib_remake"},
		{"leading trailing trimmed", "  spaced out  ", "spaced-out"},
		{"all non-ascii", "夢日記", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slug(tc.input); got != tc.want {
				t.Fatalf("Slug(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello_world"},
		{"", "unknown"},
		{"___", "unknown"},
		{"Game-2003", "game-2003"},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.input); got != tc.want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
