package domain

import "errors"

var (
	ErrMissingFilename   = errors.New("record has no filename")
	ErrBadFilename       = errors.New("record filename is not a string")
	ErrMissingDate       = errors.New("record has no date")
	ErrBadDate           = errors.New("record date cannot be parsed")
	ErrBlobOutsidePrefix = errors.New("blob key outside photo folder")
)
