package service

import "errors"

// Sentinel errors surfaced to the api layer, which maps them onto HTTP
// statuses. Handlers short-circuit on the first failing check.
var (
	ErrEmailTaken         = errors.New("user already exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("we sent you an email, please verify your email address")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrForbidden          = errors.New("you are not allowed")
)
