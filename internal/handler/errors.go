package handler

// errorResponse is the standard error envelope returned by every endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries a stable machine-readable code plus a human-readable
// message.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an errorResponse for a missing record.
// The caller supplies the human-readable message (e.g. "stay not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an errorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an errorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: message}}
}

// internalBody returns the generic errorResponse for unexpected failures,
// including store-communication errors. Details go to the log, not the client.
func internalBody() errorResponse {
	return errorResponse{Error: errorDetail{Code: "internal", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error. Services return validation errors unwrapped, so the message has the
// form "validation error: num_nights must be at least 1"; everything after
// the sentinel prefix is the part meant for the client.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const prefix = "validation error: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
