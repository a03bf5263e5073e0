package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Package errors
	ErrPackageNotFound = errors.New("package not found")
	ErrPackageInUse    = errors.New("package is linked by existing quotes")

	// Quote errors
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrQuoteNotLinked  = errors.New("quote is not linked to a package")
	ErrArrivalInPast   = errors.New("arrival date must be in the future")
	ErrVersionConflict = errors.New("package version changed since linking")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
