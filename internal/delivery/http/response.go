package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithField("status", statusCode).Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Success: false, Message: message})
}
