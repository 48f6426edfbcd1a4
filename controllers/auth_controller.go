package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/config"
)

// ====== INPUT STRUCTS ======
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ====== HANDLERS ======

// POST /api/auth/login
// Credenciales inválidas devuelven success=false con 200: son un fallo
// estructurado del contrato, no un error HTTP.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := config.Sessions.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno en el login"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	token := c.GetString("token")
	config.Sessions.Logout(token)
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// GET /api/auth/session
// Devuelve la sesión activa; el cliente lo usa para restaurar estado.
func GetSession(c *gin.Context) {
	token := c.GetString("token")
	sesion, ok := config.Sessions.Session(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida o expirada"})
		return
	}
	c.JSON(http.StatusOK, sesion)
}
