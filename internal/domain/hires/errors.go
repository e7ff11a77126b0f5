package hires

import "errors"

var (
	ErrNotFound      = errors.New("hire record not found")
	ErrDuplicateID   = errors.New("hire record id already exists")
	ErrInvalidRecord = errors.New("invalid hire record")
)
