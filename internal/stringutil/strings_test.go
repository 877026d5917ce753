package stringutil

import "testing"

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid digits", "2024", true},
		{"Valid student ID", "ugr123456", false},
		{"Empty string", "", false},
		{"Contains letter", "20a4", false},
		{"Contains space", "20 24", false},
		{"Only letters", "abc", false},
		{"Special chars", "2,024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNumeric(tt.input)
			if got != tt.want {
				t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Empty", "", 0},
		{"Single word", "2024", 1},
		{"Multiple words", "first semester 2024", 3},
		{"Extra whitespace", "  computer   science  ", 2},
		{"Tabs and newlines", "fee\tpayment\ninfo", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCount(tt.input)
			if got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinNonEmpty(t *testing.T) {
	got := JoinNonEmpty([]string{"computer science", "", "  ", "engineering"}, ", ")
	want := "computer science, engineering"
	if got != want {
		t.Errorf("JoinNonEmpty() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"Fits", "short", 10, "short"},
		{"Cut with ellipsis", "registration deadline extended", 15, "registration..."},
		{"Tiny limit returns input", "abcdef", 3, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
