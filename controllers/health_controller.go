package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/config"
	"github.com/jcamargo/panel-usuarios-backend/ws"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"store":     config.Driver,
		"timestamp": time.Now().Unix(),
		"websocket": gin.H{
			"enabled": true,
			"stats":   ws.H.GetStats(),
		},
	})
}
