package version

import (
	// Stdlib
	"errors"
	"math"

	// Vendor
	"github.com/blang/semver"
)

const GroupMatcherString = "([0-9]+)[.]([0-9]+)[.]([0-9]+)"

var ErrPatchOverflow = errors.New("patch number cannot be incremented any further")

// Version is a plain MAJOR.MINOR.PATCH version.
// Pre-release and build metadata are never set.
type Version struct {
	semver.Version
}

func New(major, minor, patch uint64) *Version {
	return &Version{semver.Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}}
}

// IncrementPatch returns a new version with the patch number bumped by one.
// The receiver is not modified.
func (v *Version) IncrementPatch() (*Version, error) {
	if v.Patch == math.MaxUint64 {
		return nil, ErrPatchOverflow
	}
	return New(v.Major, v.Minor, v.Patch+1), nil
}

func (v *Version) ReleaseTagString() string {
	return "v" + v.String()
}
