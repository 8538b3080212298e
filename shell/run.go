package shell

import (
	// Stdlib
	"bytes"
	"os/exec"
)

// Run runs the given command and returns what it printed.
// The working directory is the one of the current process.
func Run(name string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	return
}
