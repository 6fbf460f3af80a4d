package core

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'あ', 2},
		{'🐶', 2},
		{'̀', 0}, // combining grave accent
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"abc", 3},
		{"あいう", 6},
		{"", 0},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.s); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		col      int
		tabWidth int
		mask     rune
		want     int
	}{
		{"ascii", "abcdef", 3, 4, 0, 3},
		{"wide chars count two", "あいう", 2, 4, 0, 4},
		{"tab to next stop", "\tx", 2, 4, 0, 5},
		{"tab after one char", "a\tx", 2, 4, 0, 4},
		{"tab after three chars", "abc\tx", 4, 4, 0, 4},
		{"tab after four chars", "abcd\tx", 5, 4, 0, 8},
		{"tab width eight", "a\tx", 2, 8, 0, 8},
		{"wide char before tab", "あ\tx", 2, 4, 0, 4},
		{"mask hides widths", "あいう", 3, 4, '*', 3},
		{"col clamped to line", "ab", 10, 4, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayWidth([]rune(tt.line), tt.col, tt.tabWidth, tt.mask)
			if got != tt.want {
				t.Errorf("DisplayWidth = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineWidth(t *testing.T) {
	if got := LineWidth([]rune("a\tあ"), 4, 0); got != 6 {
		t.Errorf("LineWidth = %d, want 6", got)
	}
}
