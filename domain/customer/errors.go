package customer

import "errors"

var (
	// ErrMissingRequiredFields Name, email or password absent on creation
	ErrMissingRequiredFields = errors.New("name, email and password are required")

	// ErrInvalidRole Role outside the user/admin/superadmin enum
	ErrInvalidRole = errors.New("invalid role")

	// ErrNotFound No record for the given id
	ErrNotFound = errors.New("customer not found")

	// ErrEmailTaken Another record already holds the email
	ErrEmailTaken = errors.New("email already exists")
)
