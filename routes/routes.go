package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/controllers"
	"github.com/jcamargo/panel-usuarios-backend/middleware"
	"github.com/jcamargo/panel-usuarios-backend/ws"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)
	r.GET("/", controllers.LoginPage)
	r.GET("/error", controllers.ErrorPage)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middleware.AuthMiddleware(), controllers.Logout)
		auth.GET("/session", middleware.AuthMiddleware(), controllers.GetSession)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware())
		user.PUT("/profile", controllers.UpdateProfile)

		// Estudios propios
		user.GET("/studies", controllers.GetMyStudies)
		user.POST("/studies", controllers.CreateMyStudy)
		user.PUT("/studies/:id", controllers.UpdateMyStudy)
		user.DELETE("/studies/:id", controllers.DeleteMyStudy)

		// Direcciones propias
		user.GET("/addresses", controllers.GetMyAddresses)
		user.POST("/addresses", controllers.CreateMyAddress)
		user.PUT("/addresses/:id", controllers.UpdateMyAddress)
		user.DELETE("/addresses/:id", controllers.DeleteMyAddress)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRolesAPI("admin"))

		// Gestión de usuarios
		admin.GET("/users", controllers.GetUsers)
		admin.POST("/users", controllers.CreateUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		// Gestión de estudios (de cualquier usuario)
		admin.GET("/studies", controllers.GetStudies)
		admin.POST("/studies", controllers.CreateStudy)
		admin.PUT("/studies/:id", controllers.UpdateStudy)
		admin.DELETE("/studies/:id", controllers.DeleteStudy)

		// Gestión de direcciones (de cualquier usuario)
		admin.GET("/addresses", controllers.GetAddresses)
		admin.POST("/addresses", controllers.CreateAddress)
		admin.PUT("/addresses/:id", controllers.UpdateAddress)
		admin.DELETE("/addresses/:id", controllers.DeleteAddress)
	}

	// Páginas del dashboard, gateadas por sesión y rol
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", middleware.RequireSession(), controllers.Dashboard)
		dashboard.GET("/admin", middleware.RequireRoles("admin"), controllers.AdminDashboard)
		dashboard.GET("/user", middleware.RequireRoles("user"), controllers.UserDashboard)
	}

	r.GET("/ws/status", ws.HandleStatusWebSocket)

	return r
}
