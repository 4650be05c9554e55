package shared

import "testing"

func TestOpenBrowserUnknownPlatform(t *testing.T) {
	orig := goos
	goos = func() string { return "plan9" }
	defer func() { goos = orig }()

	if err := OpenBrowser("https://example.com"); err == nil {
		t.Error("expected an error for a platform without a launcher")
	}
}
