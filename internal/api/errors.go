package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the body of every non-2xx response:
//
//	{"error": {"code": "bad_request", "message": "..."}}
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error Error `json:"error"`
}

// JSONError writes a structured error response.
func JSONError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: Error{Code: code, Message: msg}})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, msg string) {
	JSONError(c, http.StatusBadRequest, "bad_request", msg)
}

// Internal writes a 500 response.
func Internal(c *gin.Context, msg string) {
	JSONError(c, http.StatusInternalServerError, "internal_error", msg)
}
