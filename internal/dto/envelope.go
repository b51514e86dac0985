package dto

// Envelope is the uniform body of every API response, success or failure.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrorsData is the data payload of a 400 validation response.
type ValidationErrorsData struct {
	Errors any `json:"errors"`
}

// EliminadoResponse confirms a delete by primary key.
type EliminadoResponse struct {
	ID      uint `json:"id"`
	Deleted bool `json:"deleted"`
}
