package store

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrCorruptRecord   = errors.New("corrupt account record")
)
