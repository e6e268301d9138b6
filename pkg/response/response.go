package response

import "github.com/gin-gonic/gin"

// ErrorBody is the JSON body of every failed request
type ErrorBody struct {
	Error string `json:"error"`
}

// Success sends data as the bare JSON body; the map frontend reads
// arrays directly, so there is no envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Error sends an error response and records err on the context for the logger
func Error(c *gin.Context, code int, message string, errs ...error) {
	for _, err := range errs {
		if err != nil {
			c.Error(err)
		}
	}
	c.JSON(code, ErrorBody{Error: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, errs ...error) {
	Error(c, 400, message, errs...)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, err error) {
	Error(c, 500, message, err)
}
