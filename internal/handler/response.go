package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"algoconfig/internal/validation"
)

// Wire shapes: {"data": ...} for success, {"error": msg} for single
// failures, {"errors": {field: msg}} for validation failures. List
// responses add a "count" alongside "data".

func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"data": data, "count": count})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func FieldErrors(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
