package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// ValidationError describe un campo ausente o fuera de catalogo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Required construye el error estandar para un campo obligatorio vacio.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}
