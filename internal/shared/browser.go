package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// goos is swappable so tests can exercise the per-platform branches.
var goos = func() string { return runtime.GOOS }

// OpenBrowser launches the user's default browser at url. The sign-in
// flow uses it to hand the OAuth consent page off to the desktop.
func OpenBrowser(url string) error {
	var name string
	var args []string

	switch plat := goos(); plat {
	case "darwin":
		name = "open"
	case "linux":
		name = "xdg-open"
	case "windows":
		name, args = "cmd", []string{"/c", "start"}
	default:
		return fmt.Errorf("no browser launcher for %s", plat)
	}

	args = append(args, url)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
