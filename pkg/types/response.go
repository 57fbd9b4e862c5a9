package types

// SuccessEnvelope wraps every successful storefront payload, so clients can rely
// on a stable `{"data": ...}` shape across catalog, cart, and order endpoints.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body. Details carries structured context
// only for codes that allow it (missing contact fields, bad image URLs).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError into the `{"error": ...}` response shape.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// NewSuccessEnvelope wraps data for a 2xx response.
func NewSuccessEnvelope(data any) SuccessEnvelope {
	return SuccessEnvelope{Data: data}
}

// NewErrorEnvelope builds the error response shape from its parts.
func NewErrorEnvelope(code, message string, details any) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{Code: code, Message: message, Details: details}}
}
