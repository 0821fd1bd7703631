package models

import "errors"

// Common errors shared across the data layer. Field-level validation
// failures are reported by the request DTOs' Validate methods; these cover
// what validation alone cannot see.
var (
	ErrNotFound       = errors.New("not found")
	ErrAuthorNotFound = errors.New("referenced author does not exist")
	ErrUserNameTaken  = errors.New("username is already taken")
)
