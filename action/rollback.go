package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/log"
)

var ErrRollbackFailed = errs.NewError(
	"Roll back changes", errors.New("failed to roll back changes"))

type step struct {
	task   string
	action Action
}

// ActionChain records the steps of a command as they succeed,
// so that they can be undone when a later step fails.
type ActionChain struct {
	steps []step
}

func NewActionChain() *ActionChain {
	return &ActionChain{}
}

// PushTask records a finished step. The task is printed as [ROLLBACK]
// when the step is being undone. Nil actions are ignored.
func (chain *ActionChain) PushTask(task string, action Action) {
	if action != nil {
		chain.steps = append(chain.steps, step{task, action})
	}
}

// Rollback undoes the steps recorded, the last one first.
// A failing step is logged and the remaining ones are still undone.
func (chain *ActionChain) Rollback() error {
	steps := chain.steps
	chain.steps = nil

	var ex error
	for i := len(steps) - 1; i >= 0; i-- {
		log.Rollback(steps[i].task)
		if err := steps[i].action.Rollback(); err != nil {
			errs.Log(err)
			ex = ErrRollbackFailed
		}
	}
	return ex
}

// RollbackOnError is meant to be deferred with a pointer to the named
// error result, which is only inspected once the function returns:
//
//	defer chain.RollbackOnError(&err)
func (chain *ActionChain) RollbackOnError(err *error) {
	if *err != nil {
		chain.Rollback()
	}
}
