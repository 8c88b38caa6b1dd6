package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong"
)
