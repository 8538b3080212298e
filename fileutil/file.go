package fileutil

import (
	// Stdlib
	"bytes"
	"fmt"
	"io"
	"os"

	// Internal
	"github.com/salsaflow/cmake-bump/action"
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/log"
)

func ReadFile(path string) ([]byte, error) {
	task := fmt.Sprintf("Read '%v'", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return content, nil
}

// Rewrite replaces the content of the file at path. The file must exist,
// it is truncated and then written from the beginning, the mode is kept.
//
// The action returned writes previous back into the file on rollback.
func Rewrite(path string, previous, content []byte) (action.Action, error) {
	task := fmt.Sprintf("Rewrite '%v'", path)

	log.V(log.Debug).Log(fmt.Sprintf("Writing %v bytes into '%v'", len(content), path))
	if err := write(path, content); err != nil {
		return nil, errs.NewError(task, err)
	}

	return action.ActionFunc(func() error {
		task := fmt.Sprintf("Restore the original content of '%v'", path)
		if err := write(path, previous); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

func write(path string, content []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer func() {
		if ex := file.Close(); ex != nil && err == nil {
			err = ex
		}
	}()

	_, err = io.Copy(file, bytes.NewReader(content))
	return err
}
