package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcamargo/panel-usuarios-backend/config"
	"github.com/jcamargo/panel-usuarios-backend/models"
	"github.com/jcamargo/panel-usuarios-backend/store"
	"github.com/jcamargo/panel-usuarios-backend/ws"
)

// ====== INPUT STRUCTS ======
type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
}

type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// ====== HANDLERS ======

// GET /api/admin/users
func GetUsers(c *gin.Context) {
	users, err := config.API.GetUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando usuarios"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// POST /api/admin/users
func CreateUser(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// El mock no comprueba unicidad de email: el check va aquí, del lado
	// del que llama, como en la pantalla original de crear usuario.
	existentes, err := config.API.GetUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando usuarios"})
		return
	}
	for _, u := range existentes {
		if u.Email == input.Email {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya está en uso"})
			return
		}
	}

	role := models.UserRole(input.Role)
	if role == "" {
		role = models.RoleUser
	}

	nuevo, err := config.API.CreateUser(c.Request.Context(), models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario"})
		return
	}

	ws.NotifyChange("user", "created", nuevo.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario creado",
		"user":    nuevo,
	})
}

// PUT /api/admin/users/:id
func UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cambios := store.UserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	if input.Role != nil {
		role := models.UserRole(*input.Role)
		cambios.Role = &role
	}

	actualizado, err := config.API.UpdateUser(c.Request.Context(), id, cambios)
	if err != nil {
		if errors.Is(err, store.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el usuario"})
		return
	}

	// Si el usuario editado tiene sesiones abiertas, que no queden con
	// datos viejos tras un reinicio
	config.Sessions.SyncUser(actualizado)

	ws.NotifyChange("user", "updated", actualizado.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado",
		"user":    actualizado,
	})
}

// DELETE /api/admin/users/:id
// Borrar un id inexistente es un no-op con deleted=false, no un error.
// No hay borrado en cascada: los estudios y direcciones del usuario quedan
// huérfanos y se informa cuántos.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	estudios, err := config.API.GetStudies(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando estudios"})
		return
	}
	direcciones, err := config.API.GetAddresses(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando direcciones"})
		return
	}

	ok, err := config.API.DeleteUser(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el usuario"})
		return
	}

	if ok {
		ws.NotifyChange("user", "deleted", id)
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":            ok,
		"orphaned_studies":   len(estudios),
		"orphaned_addresses": len(direcciones),
	})
}

// PUT /api/user/profile
// Edición del propio perfil. Un password vacío u omitido conserva el
// anterior. El rol no se puede cambiar desde aquí.
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actualizado, err := config.API.UpdateUser(c.Request.Context(), userID, store.UserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el perfil"})
		return
	}

	// Resincroniza la sesión persistida para que un reinicio no revierta
	// el perfil
	config.Sessions.SyncUser(actualizado)

	ws.NotifyChange("user", "updated", actualizado.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil actualizado",
		"user":    actualizado,
	})
}
