package services

import "errors"

// Store-level sentinel errors. A document that exists but is owned by a
// different user reports the same NotFound error as one that does not
// exist, so callers cannot probe for other users' data.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("user with this email already exists")
)
