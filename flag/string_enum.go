package flag

import (
	// Stdlib
	"fmt"
	"strings"
)

// StringEnumFlag is a flag.Value accepting one of a fixed set of strings.
type StringEnumFlag struct {
	choices []string
	value   string
}

func NewStringEnumFlag(choices []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{choices, defaultValue}
}

func (f *StringEnumFlag) Value() string {
	return f.value
}

func (f *StringEnumFlag) String() string {
	return f.value
}

func (f *StringEnumFlag) Set(value string) error {
	for _, choice := range f.choices {
		if choice == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("value not allowed: %v (choose from {%v})",
		value, strings.Join(f.choices, "|"))
}
