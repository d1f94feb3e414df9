package util

import "errors"

var (
	ErrSubjectNotFound         = errors.New("subject not found")
	ErrDivisionNotFound        = errors.New("division not found")
	ErrChapterNotFound         = errors.New("question file not found")
	ErrQuestionIndexOutOfRange = errors.New("question index out of range")
	ErrInvalidStatePayload     = errors.New("invalid state payload")
	ErrStateNotFound           = errors.New("state file not found")
	ErrStateWrite              = errors.New("failed to write state file")
)
