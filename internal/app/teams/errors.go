package teams

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

func errNotFound() *Error {
	return &Error{
		Status:  404,
		Code:    "NOT_FOUND",
		Message: "Team not found.",
	}
}

func errForbidden() *Error {
	return &Error{
		Status:  403,
		Code:    "FORBIDDEN",
		Message: "Only team leaders may do this.",
	}
}

func errLeaderLimit() *Error {
	return &Error{
		Status:  400,
		Code:    "LEADER_LIMIT_REACHED",
		Message: "A team can have at most 5 leaders.",
	}
}

func errNotAMember() *Error {
	return &Error{
		Status:  400,
		Code:    "NOT_A_MEMBER",
		Message: "The user must be a team member before becoming a leader.",
	}
}

func errNotALeader() *Error {
	return &Error{
		Status:  400,
		Code:    "NOT_A_LEADER",
		Message: "The user is not a leader of this team.",
	}
}

func errLastLeader() *Error {
	return &Error{
		Status:  403,
		Code:    "LAST_LEADER",
		Message: "A team must keep at least one leader.",
	}
}
