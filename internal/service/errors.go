package service

import "errors"

var (
	ErrDeclarationNotFound = errors.New("declaration not found")
	// ErrDuplicatePeriod means a non-rejected declaration already covers the
	// same taxpayer, period and tax type.
	ErrDuplicatePeriod  = errors.New("a declaration already exists for this taxpayer, period and tax type")
	ErrConcurrentUpdate = errors.New("declaration was modified by another request, retry")
)
