//go:build !windows && !darwin

package opener

import "os/exec"

// openFile uses xdg-open, which Linux and most BSD desktops provide.
func openFile(path string) error {
	return exec.Command("xdg-open", path).Start()
}
