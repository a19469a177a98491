package graph

// Error is a resolver error with a machine-readable code carried in the
// GraphQL error extensions. Messages are safe to show to clients; raw store
// errors never pass through here.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Extensions satisfies the graphql-go ResolverError interface so the code
// lands under errors[].extensions.code in the response envelope.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeInternal           = "INTERNAL"
)

func errUnauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "Invalid or expired access token"}
}

// Same message for unknown email and wrong password, no user-existence oracle.
func errInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Email or password is incorrect"}
}

func errEmailTaken() *Error {
	return &Error{Code: CodeEmailTaken, Message: "Email is already in use"}
}

func errBadInput(message string) *Error {
	return &Error{Code: CodeBadUserInput, Message: message}
}

func errInternal() *Error {
	return &Error{Code: CodeInternal, Message: "Something went wrong"}
}
