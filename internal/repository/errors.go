package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no declaration matches the lookup.
	ErrNotFound = errors.New("declaration not found")
	// ErrConflict is returned by Update when the stored version moved on.
	ErrConflict = errors.New("declaration was modified concurrently")
	// ErrDuplicate is returned by Create when a unique constraint fails.
	ErrDuplicate = errors.New("declaration already exists")
	// ErrOpenPeriodTaken is the ErrDuplicate raised when another
	// non-rejected declaration holds the same taxpayer, period and tax type.
	ErrOpenPeriodTaken = fmt.Errorf("%w: open declaration exists for the period", ErrDuplicate)
)
