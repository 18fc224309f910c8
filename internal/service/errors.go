package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/johndn/portfolio/internal/api/dto/common"
)

// Sentinel errors for service layer
var (
	ErrValidation      = errors.New("validation error")
	ErrOperationFailed = errors.New("operation failed")
	ErrNotFound        = errors.New("not found")
)

// ValidationError lists every rejected field of a request with its reasons.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields common.FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation error: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
