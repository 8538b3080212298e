/*
Package cmake locates the project version declaration in a CMake build file.

The declaration has the form

	project(<NAME> VERSION <MAJOR>.<MINOR>.<PATCH>)

where NAME is a single token and any non-empty run of whitespace may separate
NAME, VERSION and the version string. Only the first declaration is ever used.
*/
package cmake

import (
	// Stdlib
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	// Internal
	"github.com/salsaflow/cmake-bump/version"
)

// ErrPatternNotFound is returned when the content contains no declaration.
var ErrPatternNotFound = errors.New("version pattern not found")

const anyProjectName = `[^\s()]+`

// Matcher returns the regular expression matching the declaration.
// In case project is empty, any project name is accepted.
func Matcher(project string) *regexp.Regexp {
	name := anyProjectName
	if project != "" {
		name = regexp.QuoteMeta(project)
	}
	return regexp.MustCompile(
		`project\((` + name + `)\s+VERSION\s+` + version.GroupMatcherString + `\)`)
}

// Declaration is the parsed version declaration together with its position
// in the content it was found in.
type Declaration struct {
	Name    string
	Version *version.Version

	// Start and End are the byte offsets of the declaration, End is exclusive.
	Start int
	End   int
}

// Find returns the first declaration in content.
func Find(content []byte, project string) (*Declaration, error) {
	loc := Matcher(project).FindSubmatchIndex(content)
	if loc == nil {
		return nil, ErrPatternNotFound
	}

	var numbers [3]uint64
	for i := range numbers {
		raw := content[loc[4+2*i]:loc[5+2*i]]
		n, err := strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid version number '%s': %w", raw, err)
		}
		numbers[i] = n
	}

	return &Declaration{
		Name:    string(content[loc[2]:loc[3]]),
		Version: version.New(numbers[0], numbers[1], numbers[2]),
		Start:   loc[0],
		End:     loc[1],
	}, nil
}

// WithVersion returns a copy of the declaration carrying ver.
func (decl *Declaration) WithVersion(ver *version.Version) *Declaration {
	clone := *decl
	clone.Version = ver
	return &clone
}

// String renders the declaration using single spaces.
func (decl *Declaration) String() string {
	return fmt.Sprintf("project(%v VERSION %v)", decl.Name, decl.Version)
}

// Replace returns a copy of content where the bytes occupied by decl
// are replaced with the rendered replacement. The rest is left untouched.
func Replace(content []byte, decl, replacement *Declaration) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content) + 8)
	buf.Write(content[:decl.Start])
	buf.WriteString(replacement.String())
	buf.Write(content[decl.End:])
	return buf.Bytes()
}
