package pathutil

import "testing"

func TestEnsureLeadingSlash(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "/"},
		{"a", "/a"},
		{"/a", "/a"},
		{"a/b", "/a/b"},
	}
	for _, c := range cases {
		if got := EnsureLeadingSlash(c.in); got != c.want {
			t.Errorf("EnsureLeadingSlash(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripTrailingSlash(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/", "/"},
		{"/a/", "/a"},
		{"/a", "/a"},
		{"/a/b/", "/a/b"},
	}
	for _, c := range cases {
		if got := StripTrailingSlash(c.in); got != c.want {
			t.Errorf("StripTrailingSlash(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHasBasename(t *testing.T) {
	cases := []struct {
		path, prefix string
		want         bool
	}{
		{"/app/a", "/app", true},
		{"/app", "/app", true},
		{"/app?x=1", "/app", true},
		{"/app#top", "/app", true},
		{"/APP/a", "/app", true},
		{"/app2/a", "/app", false},
		{"/other/a", "/app", false},
		{"/a", "", false},
	}
	for _, c := range cases {
		if got := HasBasename(c.path, c.prefix); got != c.want {
			t.Errorf("HasBasename(%q, %q) = %v, want %v", c.path, c.prefix, got, c.want)
		}
	}
}

func TestStripBasename(t *testing.T) {
	cases := []struct{ path, prefix, want string }{
		{"/app/a", "/app", "/a"},
		{"/app", "/app", "/"},
		{"/other/a", "/app", "/other/a"},
		{"/a", "", "/a"},
	}
	for _, c := range cases {
		if got := StripBasename(c.path, c.prefix); got != c.want {
			t.Errorf("StripBasename(%q, %q) = %q, want %q", c.path, c.prefix, got, c.want)
		}
	}
}

func TestAddBasename(t *testing.T) {
	cases := []struct{ path, prefix, want string }{
		{"/a", "/app", "/app/a"},
		{"/a", "/app/", "/app/a"},
		{"a", "/app", "/app/a"},
		{"/a", "", "/a"},
	}
	for _, c := range cases {
		if got := AddBasename(c.path, c.prefix); got != c.want {
			t.Errorf("AddBasename(%q, %q) = %q, want %q", c.path, c.prefix, got, c.want)
		}
	}
}
