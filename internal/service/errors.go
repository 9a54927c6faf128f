package service

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEventNotFound   = errors.New("event not found")
)
