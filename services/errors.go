package services

import "errors"

// Common service-level errors
var (
	// Email errors
	ErrEmailNotFound  = errors.New("email not found")
	ErrInvalidPattern = errors.New("pattern must match something narrower than every email")

	// Mutation errors
	ErrMutationNotFound = errors.New("mutation not found")

	// Tag errors
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
)
