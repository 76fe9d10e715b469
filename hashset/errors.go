package hashset

import "errors"

var (
	// ErrInvalidDereference is the panic value of Iterator.Key at the end position.
	ErrInvalidDereference = errors.New("hashset: dereference of end iterator")
	ErrInvalidOption      = errors.New("hashset: invalid option")
)
