package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message attached to every successful response.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal failure details from clients.
	DefaultErrorMessage = "something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// NotFoundErrorCode is the error_code for missing resources.
	NotFoundErrorCode = 404
)
