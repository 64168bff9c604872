package areas

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func validationError(field, reason string) *Error {
	return &Error{
		Status:  422,
		Code:    "VALIDATION_ERROR",
		Message: "invalid " + field,
		Details: map[string]any{field: reason},
	}
}

// errNotFound conflates "does not exist" and "not yours" so callers cannot
// probe for other owners' records.
func errNotFound() *Error {
	return &Error{
		Status:  404,
		Code:    "NOT_FOUND",
		Message: "Adopted area not found.",
	}
}
