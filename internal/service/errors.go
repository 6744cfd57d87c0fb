// Package service contains the business orchestrators sitting between HTTP
// handlers and the repositories. Orchestrators return tagged error values
// from this file so handlers map outcomes to status codes with errors.Is /
// errors.As instead of inspecting error shapes after the fact.
package service

import (
	"errors"
	"sort"
	"strings"
)

// ErrPasswordMismatch is returned by signup when password and confirmation
// differ. The password fields are never compared against the store.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ErrInvalidCredentials is returned by login for both an unknown email and a
// wrong password. Collapsing the two prevents user enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError carries one message per invalid input field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}
