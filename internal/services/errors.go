package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Service-level errors shared across services. Handlers map these to HTTP
// responses; none of them is fatal and a failed operation never leaves a
// partial mutation behind.
var (
	ErrForbidden          = errors.New("action not permitted")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrRoleNotAssignable  = errors.New("role not assignable by this actor")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries per-field messages for a rejected write.
// It unwraps to ErrValidation so callers can match with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Details exposes the field map as the generic shape the error envelope
// expects.
func (e *ValidationError) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.Fields))
	for name, msg := range e.Fields {
		details[name] = msg
	}
	return details
}
