package domain

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrIncompleteProfile   = errors.New("profile is incomplete")
	ErrRequestNotFound     = errors.New("roommate request not found")
	ErrCannotRequestSelf   = errors.New("cannot send a roommate request to yourself")
	ErrNotRequestRecipient = errors.New("only the recipient can respond to a request")
	ErrRequestNotPending   = errors.New("roommate request is no longer pending")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
)
