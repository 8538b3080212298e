package config

import "fmt"

type ErrKeyInvalid struct {
	Key   string
	Value interface{}
}

func (err *ErrKeyInvalid) Error() string {
	return fmt.Sprintf("key '%s' is invalid (value = %q)", err.Key, err.Value)
}
