package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/config"
)

// AuthMiddleware protege las rutas de la API: exige un Bearer token con
// sesión activa y deja el usuario en el contexto para los controllers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Falta el header Authorization"})
			c.Abort()
			return
		}

		sesion, ok := config.Sessions.Session(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida o expirada"})
			c.Abort()
			return
		}

		// Guardamos la información en el contexto para los controllers
		c.Set("token", token)
		c.Set("user_id", sesion.User.ID)
		c.Set("role", string(sesion.User.Role))
		c.Set("user", sesion.User)
		c.Next()
	}
}

// tokenFromRequest saca el token del header "Bearer <token>" o, para las
// páginas del dashboard, del query param token.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Query("token")
}
