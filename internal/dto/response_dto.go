package dto

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ResultResponse carries the generated text of the simple AI-backed features.
type ResultResponse struct {
	Result string `json:"result"`
}

// MessageResponse carries a conversational reply.
type MessageResponse struct {
	Message string `json:"message"`
}
