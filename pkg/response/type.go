package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message returned on every successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from clients on 500s.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code used for unexpected failures.
	InternalServerErrorCode = 500
)
