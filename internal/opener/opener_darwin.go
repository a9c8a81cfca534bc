//go:build darwin

package opener

import "os/exec"

func openFile(path string) error {
	return exec.Command("open", path).Start()
}
