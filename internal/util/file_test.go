package util

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"封面.jpg", "__.jpg"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage("image/png") || !IsImage("image/jpeg") {
		t.Error("image mime types should pass")
	}
	if IsImage("application/pdf") || IsImage("text/html") {
		t.Error("non-image mime types should fail")
	}
}
