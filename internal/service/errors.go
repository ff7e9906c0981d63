package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnknownWordKind      = errors.New("unknown word collection")
	ErrUnknownQuizDirection = errors.New("unknown quiz direction")

	ErrValidationEmptyField   = errors.New("required field is empty")
	ErrValidationValueTooLong = errors.New("value exceeds maximum length")
)
