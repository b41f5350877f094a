package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid session")
	ErrTokenRevoked       = errors.New("session revoked")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrTeacherRequired  = errors.New("you need to be a teacher to access this page")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRole      = errors.New("invalid role")
)

// Domain errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already exists")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientIDExists      = errors.New("patient ID already exists")
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrUnknownReference     = errors.New("referenced record does not exist")
	ErrDivisionByZero       = errors.New("float division by zero")
)

// IsNotFound reports whether err is any of the not-found sentinels
func IsNotFound(err error) bool {
	return Is(err, ErrResourceNotFound, ErrUserNotFound, ErrPatientNotFound,
		ErrMedicationNotFound, ErrPrescriptionNotFound)
}

// Is returns whether err matches target or any error in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
