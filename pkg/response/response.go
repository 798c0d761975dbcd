package response

import "github.com/gin-gonic/gin"

// RequestIDKey is the gin context key holding the request id echoed in
// error responses.
const RequestIDKey = "request_id"

// Response represents a standard API response format
type Response struct {
	Status     string `json:"status"`      // "success" or "error"
	StatusCode int    `json:"status_code"` // HTTP status code
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data any) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Fail writes an error response tagged with the request id, if any.
func Fail(c *gin.Context, statusCode int, err string) {
	res := Error(statusCode, err)
	res.RequestID = c.GetString(RequestIDKey)
	c.JSON(statusCode, res)
}
