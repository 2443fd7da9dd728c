package response

// Response — успешный конверт API: {"status":"success","data":...}.
// Message заполняется только для ответов без полезных данных.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse — конверт ошибки с машинным кодом и необязательной
// детализацией для логов фронтенда
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data any) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func ErrorResponseWithDetails(code, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   code,
		Details: details,
	}
}
