package util

import "testing"

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"-1", -1},
		{"", 0},
		{"abc", 0},
		{"1.5", 0},
	}
	for _, tt := range tests {
		if got := ParseOrder(tt.in); got != tt.want {
			t.Errorf("ParseOrder(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseOptionalOrder(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"7", intPtr(7)},
		{" 0 ", intPtr(0)},
		{"", nil},
		{"   ", nil},
		{"abc", nil},
	}
	for _, tt := range tests {
		got := ParseOptionalOrder(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseOptionalOrder(%q) = %d, want nil", tt.in, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ParseOptionalOrder(%q) = nil, want %d", tt.in, *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Errorf("ParseOptionalOrder(%q) = %d, want %d", tt.in, *got, *tt.want)
		}
	}
}

func TestNormalizeOptional(t *testing.T) {
	if got := NormalizeOptional("  hello  "); got == nil || *got != "hello" {
		t.Errorf("NormalizeOptional trimmed value mismatch: %v", got)
	}
	if got := NormalizeOptional("   "); got != nil {
		t.Errorf("NormalizeOptional blank should be nil, got %q", *got)
	}
}

func intPtr(n int) *int {
	return &n
}
