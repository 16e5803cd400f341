package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrEmployeeIDExists      = errors.New("employee id already exists")
	ErrEmployeeAlreadyExited = errors.New("employee has already exited")
	ErrCannotOffboardSelf    = errors.New("cannot offboard your own employee record")
)
