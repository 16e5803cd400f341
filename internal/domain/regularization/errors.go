package regularization

import "errors"

var (
	ErrRequestNotFound    = errors.New("regularization request not found")
	ErrForbidden          = errors.New("not allowed to act on this regularization request")
	ErrAlreadyDecided     = errors.New("regularization request already processed")
	ErrDuplicateRequestID = errors.New("regularization request id already exists")
)
