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
type CreateStudyInput struct {
	Title       string `json:"title" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Year        int    `json:"year" binding:"required,gte=1950,lte=2030"`
	// Solo lo usa la variante de admin; para el usuario se ignora y manda
	// la sesión
	UserID string `json:"userId"`
}

type UpdateStudyInput struct {
	Title       *string `json:"title"`
	Institution *string `json:"institution"`
	Year        *int    `json:"year" binding:"omitempty,gte=1950,lte=2030"`
}

// ====== HANDLERS DEL USUARIO ======

// GET /api/user/studies
func GetMyStudies(c *gin.Context) {
	userID := c.GetString("user_id")
	estudios, err := config.API.GetStudies(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando estudios"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"studies": estudios})
}

// POST /api/user/studies
func CreateMyStudy(c *gin.Context) {
	var input CreateStudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// La propiedad sale de la sesión, nunca del body
	nuevo, err := config.API.CreateStudy(c.Request.Context(), models.Study{
		UserID:      c.GetString("user_id"),
		Title:       input.Title,
		Institution: input.Institution,
		Year:        input.Year,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el estudio"})
		return
	}

	ws.NotifyChange("study", "created", nuevo.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Estudio creado",
		"study":   nuevo,
	})
}

// PUT /api/user/studies/:id
func UpdateMyStudy(c *gin.Context) {
	id := c.Param("id")
	if !ownsStudy(c, id) {
		return
	}
	updateStudy(c, id)
}

// DELETE /api/user/studies/:id
func DeleteMyStudy(c *gin.Context) {
	id := c.Param("id")
	if !ownsStudy(c, id) {
		return
	}
	deleteStudy(c, id)
}

// ownsStudy verifica que el estudio pertenezca al usuario de la sesión.
// El mock no hace ninguna comprobación de autorización: igual que en el
// cliente original, el control vive en esta capa.
func ownsStudy(c *gin.Context, id string) bool {
	userID := c.GetString("user_id")
	propios, err := config.API.GetStudies(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando estudios"})
		return false
	}
	for _, s := range propios {
		if s.ID == id {
			return true
		}
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "El estudio no pertenece al usuario"})
	return false
}

// ====== HANDLERS DE ADMIN ======

// GET /api/admin/studies?user_id=
// Sin user_id devuelve la colección completa.
func GetStudies(c *gin.Context) {
	estudios, err := config.API.GetStudies(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando estudios"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"studies": estudios})
}

// POST /api/admin/studies
// El admin crea en nombre de cualquier usuario: el userId viene en el body.
func CreateStudy(c *gin.Context) {
	var input CreateStudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El userId es obligatorio"})
		return
	}

	nuevo, err := config.API.CreateStudy(c.Request.Context(), models.Study{
		UserID:      input.UserID,
		Title:       input.Title,
		Institution: input.Institution,
		Year:        input.Year,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el estudio"})
		return
	}

	ws.NotifyChange("study", "created", nuevo.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Estudio creado",
		"study":   nuevo,
	})
}

// PUT /api/admin/studies/:id
func UpdateStudy(c *gin.Context) {
	updateStudy(c, c.Param("id"))
}

// DELETE /api/admin/studies/:id
func DeleteStudy(c *gin.Context) {
	deleteStudy(c, c.Param("id"))
}

// ====== COMUNES ======

func updateStudy(c *gin.Context, id string) {
	var input UpdateStudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actualizado, err := config.API.UpdateStudy(c.Request.Context(), id, store.StudyUpdate{
		Title:       input.Title,
		Institution: input.Institution,
		Year:        input.Year,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estudio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el estudio"})
		return
	}

	ws.NotifyChange("study", "updated", actualizado.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Estudio actualizado",
		"study":   actualizado,
	})
}

func deleteStudy(c *gin.Context, id string) {
	ok, err := config.API.DeleteStudy(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el estudio"})
		return
	}
	if ok {
		ws.NotifyChange("study", "deleted", id)
	}
	c.JSON(http.StatusOK, gin.H{"deleted": ok})
}
