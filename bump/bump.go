package bump

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/cmake-bump/action"
	"github.com/salsaflow/cmake-bump/cmake"
	"github.com/salsaflow/cmake-bump/errs"
	"github.com/salsaflow/cmake-bump/fileutil"
	"github.com/salsaflow/cmake-bump/log"
	"github.com/salsaflow/cmake-bump/version"
)

const hintPatternNotFound = `
The file must contain a declaration in the following form:

    project(<NAME> VERSION <MAJOR>.<MINOR>.<PATCH>)

`

// Bump increments the patch number of the first version declaration
// found in the file at path and returns the new version.
func Bump(path string) (*version.Version, error) {
	ver, _, err := (&Bumper{Path: path}).Bump()
	return ver, err
}

type Bumper struct {
	// Path is the file containing the version declaration.
	Path string

	// Project, when set, restricts the declaration to the given project name.
	Project string
}

// Current returns the declaration as it is stored in the file right now.
func (b *Bumper) Current() (*cmake.Declaration, error) {
	_, decl, err := b.load()
	return decl, err
}

// Bump rewrites the file with the patch number incremented by one.
// The file is not touched when the declaration cannot be found.
//
// The action returned restores the original file content on rollback.
func (b *Bumper) Bump() (*version.Version, action.Action, error) {
	task := fmt.Sprintf("Bump the patch version in '%v'", b.Path)
	log.Run(task)

	content, decl, err := b.load()
	if err != nil {
		return nil, nil, errs.NewError(task, err)
	}

	next, err := decl.Version.IncrementPatch()
	if err != nil {
		return nil, nil, errs.NewError(task, err)
	}
	bumped := decl.WithVersion(next)
	log.V(log.Verbose).Log(fmt.Sprintf("%v -> %v", decl, bumped))

	act, err := fileutil.Rewrite(b.Path, content, cmake.Replace(content, decl, bumped))
	if err != nil {
		return nil, nil, errs.NewError(task, err)
	}

	log.Ok(fmt.Sprintf("Version bumped to %v", bumped.Version))
	return bumped.Version, act, nil
}

func (b *Bumper) load() ([]byte, *cmake.Declaration, error) {
	content, err := fileutil.ReadFile(b.Path)
	if err != nil {
		return nil, nil, err
	}

	task := fmt.Sprintf("Find the version declaration in '%v'", b.Path)
	if b.Project != "" {
		task = fmt.Sprintf("Find the version declaration for project '%v' in '%v'",
			b.Project, b.Path)
	}
	decl, err := cmake.Find(content, b.Project)
	if err != nil {
		if err == cmake.ErrPatternNotFound {
			return nil, nil, errs.NewErrorWithHint(task, err, hintPatternNotFound)
		}
		return nil, nil, errs.NewError(task, err)
	}
	return content, decl, nil
}
