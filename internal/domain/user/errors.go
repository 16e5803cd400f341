package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrActorMissing            = errors.New("actor not found in token")
)
