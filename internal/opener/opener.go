// Package opener invokes the platform's "open file" command on a generated
// document. Opening is best-effort: the caller reports a failure but never
// treats it as fatal.
package opener

// Open asks the OS to open the file with its default application.
func Open(path string) error {
	return openFile(path)
}
