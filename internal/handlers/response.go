package handlers

import "github.com/gin-gonic/gin"

// APIResponse is the uniform envelope every endpoint returns.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Total      *int64      `json:"total,omitempty"`
}

func Respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// RespondWithTotal attaches the total counter used by list endpoints.
func RespondWithTotal(c *gin.Context, status int, data interface{}, message string, total int64) {
	c.JSON(status, APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
		Total:      &total,
	})
}
