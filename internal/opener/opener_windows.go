//go:build windows

package opener

import "os/exec"

// openFile shells out to "cmd /c start" with an empty title argument so
// paths containing spaces are not mistaken for the window title.
func openFile(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}
