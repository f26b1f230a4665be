package imageutil

import "testing"

func TestResolveURL(t *testing.T) {
	base := "https://im-staging.haat.delivery"
	cases := []struct {
		path string
		want string
	}{
		{"", ""},
		{"burger1.jpg", base + "/burger1.jpg"},
		{"/burger1.jpg", base + "/burger1.jpg"},
		{"https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"http://cdn.example.com/x.jpg", "http://cdn.example.com/x.jpg"},
	}
	for _, c := range cases {
		if got := ResolveURL(base, c.path); got != c.want {
			t.Errorf("ResolveURL(%q) = %q, want %q", c.path, got, c.want)
		}
	}

	// Trailing slash on the base never doubles up.
	if got := ResolveURL(base+"/", "x.jpg"); got != base+"/x.jpg" {
		t.Errorf("ResolveURL with trailing slash = %q", got)
	}
}
