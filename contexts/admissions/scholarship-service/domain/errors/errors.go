package errors

import "errors"

var (
	ErrScholarshipNotFound     = errors.New("scholarship not found")
	ErrInvalidScholarshipInput = errors.New("invalid scholarship input")
)
