package utils

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"front yard (1).jpg", "frontyard1.jpg"},
		{"my photo!@#.png", "myphoto.png"},
		{"weird/..\\path.jpg", "weird..path.jpg"},
		{"snake_case-name.jpeg", "snake_case-name.jpeg"},
		{"", ""},
		{"ünïcödé.png", "ncd.png"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAttachmentKey(t *testing.T) {
	got := AttachmentKey("u1", "r1", 1710495000123, 0, "front door.jpg")
	want := "u1/r1/1710495000123-0-frontdoor.jpg"
	if got != want {
		t.Errorf("AttachmentKey = %q, want %q", got, want)
	}
}

func TestAttachmentKeySameNameDistinct(t *testing.T) {
	a := AttachmentKey("u1", "r1", 1710495000123, 0, "photo.jpg")
	b := AttachmentKey("u1", "r1", 1710495000123, 1, "photo.jpg")
	if a == b {
		t.Errorf("identical keys %q for distinct parts", a)
	}
}

func TestAttachmentPrefix(t *testing.T) {
	if got := AttachmentPrefix("u1", "r1"); got != "u1/r1/" {
		t.Errorf("AttachmentPrefix = %q", got)
	}
}
