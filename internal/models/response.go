package models

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}

// ValidationResponse carries per-field messages alongside the generic
// "Validation error" marker.
func ValidationResponse(fields map[string]string) Response {
	return Response{
		Success: false,
		Error:   "Validation error",
		Errors:  fields,
	}
}
