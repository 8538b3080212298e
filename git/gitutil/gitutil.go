package gitutil

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/log"
	"github.com/salsaflow/cmake-bump/shell"
)

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 1, 1+len(args))
	argsList[0] = "--no-pager"
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run git with args = %#v", args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.Run("git", argsList...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

// CommitFiles stages the given paths and commits them, and only them,
// using the given message.
func CommitFiles(message string, paths ...string) error {
	task := fmt.Sprintf("Commit %v", strings.Join(paths, ", "))

	addArgs := append([]string{"add", "--"}, paths...)
	if _, err := Run(addArgs...); err != nil {
		return errs.NewError(task, err)
	}

	commitArgs := append([]string{"commit", "-m", message, "--"}, paths...)
	if _, err := Run(commitArgs...); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

// Tag creates a lightweight tag pointing to HEAD.
// It fails when the tag exists already.
func Tag(name string) error {
	task := fmt.Sprintf("Create tag '%v'", name)
	if _, err := Run("tag", name); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

// UndoLastCommit moves the current branch one commit back.
// The working tree is kept, the index is reset.
func UndoLastCommit() error {
	task := "Undo the last commit"
	if _, err := Run("reset", "-q", "HEAD~1"); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
