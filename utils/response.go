package utils

// APIResponse is the envelope returned by every endpoint, success or
// failure, so clients have a single shape to parse.
type APIResponse struct {
	Data    interface{} `json:"data"`
	Error   bool        `json:"error"`
	Message string      `json:"message"`
}

func NewResponse(data interface{}, message string) APIResponse {
	return APIResponse{Data: data, Error: false, Message: message}
}

func NewErrorResponse(message string, data interface{}) APIResponse {
	return APIResponse{Data: data, Error: true, Message: message}
}
