package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type WelcomeResponse struct {
	Message string `json:"message"`
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{Message: "Welcome to Taskify API"})
}
