package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

// GET /
// Página de login; el guard redirige aquí cuando no hay sesión.
func LoginPage(c *gin.Context) {
	c.String(http.StatusOK, "Inicio de sesión")
}

// GET /dashboard
// Reparte según el rol de la sesión, como el Dashboard del cliente original.
func Dashboard(c *gin.Context) {
	switch models.UserRole(c.GetString("role")) {
	case models.RoleAdmin:
		c.Redirect(http.StatusFound, "/dashboard/admin")
	case models.RoleUser:
		c.Redirect(http.StatusFound, "/dashboard/user")
	default:
		c.Redirect(http.StatusFound, "/error")
	}
}

// GET /dashboard/admin
func AdminDashboard(c *gin.Context) {
	user := c.MustGet("user").(models.PublicUser)
	c.JSON(http.StatusOK, gin.H{
		"dashboard": "admin",
		"user":      user,
	})
}

// GET /dashboard/user
func UserDashboard(c *gin.Context) {
	user := c.MustGet("user").(models.PublicUser)
	c.JSON(http.StatusOK, gin.H{
		"dashboard": "user",
		"user":      user,
	})
}

// GET /error
func ErrorPage(c *gin.Context) {
	c.String(http.StatusForbidden, "Acceso no autorizado")
}
