package errs

import (
	// Stdlib
	"fmt"
	"strings"

	// Internal
	"github.com/salsaflow/cmake-bump/log"

	// Vendor
	"github.com/fatih/color"
)

// Error represents a failed task. It carries the task description,
// the underlying error and an optional hint for the user.
type Error struct {
	task string
	err  error
	hint string
}

func NewError(task string, err error) *Error {
	return NewErrorWithHint(task, err, "")
}

func NewErrorWithHint(task string, err error, hint string) *Error {
	return &Error{task, err, hint}
}

func (err *Error) Task() string {
	return err.task
}

func (err *Error) Hint() string {
	return err.hint
}

func (err *Error) Error() string {
	if err.err == nil {
		return err.task + ": task failed"
	}
	return err.err.Error()
}

func (err *Error) Unwrap() error {
	return err.err
}

// RootCause returns the innermost error that is not *Error.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Error)
		if !ok || ex.err == nil {
			return err
		}
		err = ex.err
	}
}

// Log prints the task chain, the hints and the root cause at the info level.
func Log(err error) error {
	log.V(log.Info).Println(message(err))
	return err
}

// LogError is a shortcut for Log(NewError(task, err)).
func LogError(task string, err error) error {
	return Log(NewError(task, err))
}

// Fatal logs the error and exits the process with status 1.
func Fatal(err error) {
	log.Fatalln(message(err))
}

func message(err error) string {
	var (
		tasks []string
		hints []string
	)
	for cur := err; cur != nil; {
		ex, ok := cur.(*Error)
		if !ok {
			break
		}
		tasks = append(tasks, ex.task)
		if ex.hint != "" {
			hints = append(hints, strings.Trim(ex.hint, "\n"))
		}
		cur = ex.err
	}

	var b strings.Builder
	fail := color.New(color.FgRed).Add(color.Bold).SprintFunc()
	for _, task := range tasks {
		fmt.Fprintf(&b, "%v     %v\n", fail("[FAIL]"), task)
	}
	for _, hint := range hints {
		fmt.Fprintf(&b, "\n%v\n", color.YellowString(hint))
	}
	fmt.Fprintf(&b, "\nError: %v", RootCause(err))
	return b.String()
}
