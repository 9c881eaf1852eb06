package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooLong     = errors.New("password is too long")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNothingToUpdate     = errors.New("no product fields to update")

	ErrHashingPassword     = errors.New("error hashing password")
	ErrTokenCreationFailed = errors.New("token creation failed")
)
