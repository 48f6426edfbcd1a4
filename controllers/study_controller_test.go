package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStudiesCRUD(t *testing.T) {
	r := setupRouter(t)
	token, _ := login(t, r, "juan@test.com", "user123")
	require.NotEmpty(t, token)

	// Juan arranca con sus dos estudios del seed
	w := doJSON(r, http.MethodGet, "/api/user/studies", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ingeniería en Sistemas")
	assert.Contains(t, w.Body.String(), "Curso React")
	assert.NotContains(t, w.Body.String(), "Licenciatura en Administración")

	// Año fuera de rango: la validación corta antes de llegar al mock
	w = doJSON(r, http.MethodPost, "/api/user/studies", token,
		`{"title":"Bachillerato","institution":"Colegio San José","year":1940}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/user/studies", token,
		`{"title":"Diplomado en Datos","institution":"SENA","year":2024}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"4"`)
}

func TestUserCannotTouchForeignStudy(t *testing.T) {
	r := setupRouter(t)
	token, _ := login(t, r, "juan@test.com", "user123")
	require.NotEmpty(t, token)

	// El estudio "3" es de María
	w := doJSON(r, http.MethodPut, "/api/user/studies/3", token, `{"year":2022}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/user/studies/3", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminStudyDeleteAsymmetry(t *testing.T) {
	r := setupRouter(t)
	token, _ := login(t, r, "admin@test.com", "admin123")
	require.NotEmpty(t, token)

	// Borrar un id inexistente: no-op con deleted=false
	w := doJSON(r, http.MethodDelete, "/api/admin/studies/99", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":false`)

	// Actualizar el mismo id inexistente sí falla
	w = doJSON(r, http.MethodPut, "/api/admin/studies/99", token, `{"year":2022}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressTypeValidation(t *testing.T) {
	r := setupRouter(t)
	token, _ := login(t, r, "maria@test.com", "user123")
	require.NotEmpty(t, token)

	w := doJSON(r, http.MethodPost, "/api/user/addresses", token,
		`{"street":"Calle 10 #5-51","city":"Cali","country":"Colombia","type":"Oficina"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/user/addresses", token,
		`{"street":"Calle 10 #5-51","city":"Cali","country":"Colombia","type":"Otro"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"Otro"`)
}

func TestDeleteUserReportsOrphans(t *testing.T) {
	r := setupRouter(t)
	token, _ := login(t, r, "admin@test.com", "admin123")
	require.NotEmpty(t, token)

	// Juan tiene 2 estudios y 2 direcciones; al borrarlo quedan huérfanos
	w := doJSON(r, http.MethodDelete, "/api/admin/users/2", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
	assert.Contains(t, w.Body.String(), `"orphaned_studies":2`)
	assert.Contains(t, w.Body.String(), `"orphaned_addresses":2`)
}
