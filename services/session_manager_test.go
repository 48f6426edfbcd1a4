package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/panel-usuarios-backend/models"
	"github.com/jcamargo/panel-usuarios-backend/store"
)

func tempSessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sessions.json")
}

func newManager(t *testing.T) (*SessionManager, string) {
	t.Helper()
	s := store.NewMemoryStore()
	s.Seed()
	archivo := tempSessionFile(t)
	return NewSessionManager(&AuthService{Store: s}, archivo), archivo
}

func writeSessions(t *testing.T, archivo string, sesiones []map[string]any) {
	t.Helper()
	data, err := json.Marshal(sesiones)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(archivo, data, 0o600))
}

func TestRestoreCompleteEntry(t *testing.T) {
	sm, archivo := newManager(t)
	writeSessions(t, archivo, []map[string]any{
		{
			"token": "mock-token-2-123",
			"user":  map[string]any{"id": "2", "name": "Juan Pérez", "email": "juan@test.com", "role": "user"},
		},
	})

	require.NoError(t, sm.Restore())

	// Autenticado de inmediato, sin ningún login
	assert.True(t, sm.IsAuthenticated("mock-token-2-123"))
	sesion, ok := sm.Session("mock-token-2-123")
	require.True(t, ok)
	assert.Equal(t, "2", sesion.User.ID)
}

func TestRestoreDiscardsPartialEntries(t *testing.T) {
	sm, archivo := newManager(t)
	writeSessions(t, archivo, []map[string]any{
		{"token": "mock-token-1-456"}, // sin usuario
		{"user": map[string]any{"id": "3", "name": "María García", "email": "maria@test.com", "role": "user"}}, // sin token
	})

	require.NoError(t, sm.Restore())

	assert.False(t, sm.IsAuthenticated("mock-token-1-456"))
	assert.False(t, sm.IsAuthenticated(""))
}

func TestRestoreMissingFileIsFine(t *testing.T) {
	sm, _ := newManager(t)
	require.NoError(t, sm.Restore())
	assert.True(t, sm.Ready())
}

func TestReadyOnlyAfterRestore(t *testing.T) {
	sm, _ := newManager(t)
	assert.False(t, sm.Ready())
	require.NoError(t, sm.Restore())
	assert.True(t, sm.Ready())
}

func TestLoginPersistsSession(t *testing.T) {
	sm, archivo := newManager(t)
	require.NoError(t, sm.Restore())

	res, err := sm.Login(context.Background(), "juan@test.com", "user123")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, sm.IsAuthenticated(res.Token))

	// Un manager nuevo que restaure del mismo archivo ve la sesión
	otro := NewSessionManager(nil, archivo)
	require.NoError(t, otro.Restore())
	assert.True(t, otro.IsAuthenticated(res.Token))
}

func TestFailedLoginMutatesNothing(t *testing.T) {
	sm, archivo := newManager(t)
	require.NoError(t, sm.Restore())

	res, err := sm.Login(context.Background(), "juan@test.com", "malo")
	require.NoError(t, err)
	assert.False(t, res.Success)

	// Ni sesión en memoria ni archivo escrito
	_, statErr := os.Stat(archivo)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogoutRemovesSession(t *testing.T) {
	sm, archivo := newManager(t)
	require.NoError(t, sm.Restore())

	res, err := sm.Login(context.Background(), "maria@test.com", "user123")
	require.NoError(t, err)
	require.True(t, res.Success)

	sm.Logout(res.Token)
	assert.False(t, sm.IsAuthenticated(res.Token))

	otro := NewSessionManager(nil, archivo)
	require.NoError(t, otro.Restore())
	assert.False(t, otro.IsAuthenticated(res.Token))
}

func TestSyncUserResyncsPersistedProfile(t *testing.T) {
	sm, archivo := newManager(t)
	require.NoError(t, sm.Restore())

	res, err := sm.Login(context.Background(), "juan@test.com", "user123")
	require.NoError(t, err)
	require.True(t, res.Success)

	sm.SyncUser(models.PublicUser{ID: "2", Name: "Juan Actualizado", Email: "juan@test.com", Role: models.RoleUser})

	sesion, ok := sm.Session(res.Token)
	require.True(t, ok)
	assert.Equal(t, "Juan Actualizado", sesion.User.Name)

	// El archivo también queda al día: un reinicio no revierte el perfil
	otro := NewSessionManager(nil, archivo)
	require.NoError(t, otro.Restore())
	restaurada, ok := otro.Session(res.Token)
	require.True(t, ok)
	assert.Equal(t, "Juan Actualizado", restaurada.User.Name)
}
