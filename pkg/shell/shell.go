package shell

import (
	"bytes"
	"errors"
	"os/exec"
)

type Result struct {
	Stdout bytes.Buffer
	Errout bytes.Buffer
}

// Exec runs an os command and captures both output streams. Anything
// written to stderr is reported as an error even when the exit code is 0.
func Exec(name string, args ...string) (result *Result, err error) {
	return ExecInDir(name, "", args...)
}

func ExecInDir(name string, dir string, args ...string) (result *Result, err error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	result = &Result{}
	cmd.Stdout = &result.Stdout
	cmd.Stderr = &result.Errout

	if err = cmd.Run(); err != nil {
		return
	}

	if errStr := result.Errout.String(); errStr != "" {
		err = errors.New(errStr)
	}

	return
}
