package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/config"
	"github.com/jcamargo/panel-usuarios-backend/models"
)

// resolveSession es el guard común de las páginas del dashboard. Mientras
// la restauración de sesiones siga pendiente muestra el placeholder de
// carga, nunca redirige antes de tiempo. Sin sesión válida, manda al
// login. Devuelve true solo si dejó la sesión en el contexto.
func resolveSession(c *gin.Context) bool {
	if !config.Sessions.Ready() {
		c.String(http.StatusOK, "Cargando...")
		c.Abort()
		return false
	}

	token := tokenFromRequest(c)
	sesion, ok := config.Sessions.Session(token)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return false
	}

	c.Set("token", token)
	c.Set("user_id", sesion.User.ID)
	c.Set("role", string(sesion.User.Role))
	c.Set("user", sesion.User)
	return true
}

// RequireSession gatea una página solo por autenticación, sin mirar el rol.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveSession(c) {
			return
		}
		c.Next()
	}
}

// RequireRoles gatea una página por rol. Un usuario autenticado con un rol
// no permitido se redirige a SU propio dashboard; un rol desconocido va a
// la página de error.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveSession(c) {
			return
		}

		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		switch models.UserRole(role) {
		case models.RoleAdmin:
			c.Redirect(http.StatusFound, "/dashboard/admin")
		case models.RoleUser:
			c.Redirect(http.StatusFound, "/dashboard/user")
		default:
			c.Redirect(http.StatusFound, "/error")
		}
		c.Abort()
	}
}

// RequireRolesAPI es la variante para rutas JSON: responde 403 en vez de
// redirigir. Se monta después de AuthMiddleware.
func RequireRolesAPI(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No se pudo determinar el rol del usuario"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error procesando el rol del usuario"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para acceder a este recurso"})
		c.Abort()
	}
}
