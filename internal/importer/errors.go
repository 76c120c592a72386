package importer

import "errors"

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrUnknownColumn = errors.New("unknown column")
	ErrInvalidValue  = errors.New("invalid value")
)
