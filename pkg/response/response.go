package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the fixed error shape every failure responds with.
type ErrorBody struct {
	Error string `json:"error"`
}

// ── success responses ──

// OK writes a 200 response with the given body.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 response with the given body.
func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// ── error responses ──

// Error writes an error response with the fixed {error: message} shape.
func Error(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500 with a generic message; internals are never leaked.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Unexpected server error.")
}

// RouteNotFound 404 for unmatched routes.
func RouteNotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Route not found.")
}
