package position

import "errors"

var (
	ErrPositionNotFound     = errors.New("position not found")
	ErrPositionNameExists   = errors.New("position with this name already exists")
	ErrPositionHasEmployees = errors.New("position cannot be deleted while employees reference it")
)
