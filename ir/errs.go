package ir

import "errors"

// ErrExists is returned when a key is added to an object which has it.
var ErrExists = errors.New("key exists")
