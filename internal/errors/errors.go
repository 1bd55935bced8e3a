// Package errors defines the domain error taxonomy. Business-rule
// rejections are values of DomainError so handlers can map each one to
// a response status without string inspection.
package errors

// DomainError is a typed business failure with a stable code and the
// HTTP status it maps to at the transport boundary.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error carrying a more specific
// message, keeping the code and status matchable via errors.Is.
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message, Status: e.Status}
}

// Is matches DomainError values by code, so variants produced with
// WithMessage still compare equal to their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
