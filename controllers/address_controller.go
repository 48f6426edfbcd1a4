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
type CreateAddressInput struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=Casa Trabajo Otro"`
	// Solo para la variante de admin
	UserID string `json:"userId"`
}

type UpdateAddressInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Type    *string `json:"type" binding:"omitempty,oneof=Casa Trabajo Otro"`
}

// ====== HANDLERS DEL USUARIO ======

// GET /api/user/addresses
func GetMyAddresses(c *gin.Context) {
	userID := c.GetString("user_id")
	direcciones, err := config.API.GetAddresses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando direcciones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": direcciones})
}

// POST /api/user/addresses
func CreateMyAddress(c *gin.Context) {
	var input CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nueva, err := config.API.CreateAddress(c.Request.Context(), models.Address{
		UserID:  c.GetString("user_id"),
		Street:  input.Street,
		City:    input.City,
		Country: input.Country,
		Type:    models.AddressType(input.Type),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la dirección"})
		return
	}

	ws.NotifyChange("address", "created", nueva.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Dirección creada",
		"address": nueva,
	})
}

// PUT /api/user/addresses/:id
func UpdateMyAddress(c *gin.Context) {
	id := c.Param("id")
	if !ownsAddress(c, id) {
		return
	}
	updateAddress(c, id)
}

// DELETE /api/user/addresses/:id
func DeleteMyAddress(c *gin.Context) {
	id := c.Param("id")
	if !ownsAddress(c, id) {
		return
	}
	deleteAddress(c, id)
}

func ownsAddress(c *gin.Context, id string) bool {
	userID := c.GetString("user_id")
	propias, err := config.API.GetAddresses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando direcciones"})
		return false
	}
	for _, a := range propias {
		if a.ID == id {
			return true
		}
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "La dirección no pertenece al usuario"})
	return false
}

// ====== HANDLERS DE ADMIN ======

// GET /api/admin/addresses?user_id=
func GetAddresses(c *gin.Context) {
	direcciones, err := config.API.GetAddresses(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando direcciones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": direcciones})
}

// POST /api/admin/addresses
func CreateAddress(c *gin.Context) {
	var input CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El userId es obligatorio"})
		return
	}

	nueva, err := config.API.CreateAddress(c.Request.Context(), models.Address{
		UserID:  input.UserID,
		Street:  input.Street,
		City:    input.City,
		Country: input.Country,
		Type:    models.AddressType(input.Type),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la dirección"})
		return
	}

	ws.NotifyChange("address", "created", nueva.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Dirección creada",
		"address": nueva,
	})
}

// PUT /api/admin/addresses/:id
func UpdateAddress(c *gin.Context) {
	updateAddress(c, c.Param("id"))
}

// DELETE /api/admin/addresses/:id
func DeleteAddress(c *gin.Context) {
	deleteAddress(c, c.Param("id"))
}

// ====== COMUNES ======

func updateAddress(c *gin.Context, id string) {
	var input UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cambios := store.AddressUpdate{
		Street:  input.Street,
		City:    input.City,
		Country: input.Country,
	}
	if input.Type != nil {
		tipo := models.AddressType(*input.Type)
		cambios.Type = &tipo
	}

	actualizada, err := config.API.UpdateAddress(c.Request.Context(), id, cambios)
	if err != nil {
		if errors.Is(err, store.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dirección no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la dirección"})
		return
	}

	ws.NotifyChange("address", "updated", actualizada.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Dirección actualizada",
		"address": actualizada,
	})
}

func deleteAddress(c *gin.Context, id string) {
	ok, err := config.API.DeleteAddress(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la dirección"})
		return
	}
	if ok {
		ws.NotifyChange("address", "deleted", id)
	}
	c.JSON(http.StatusOK, gin.H{"deleted": ok})
}
