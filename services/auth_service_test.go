package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/panel-usuarios-backend/store"
)

// Acorta las latencias del mock para que la suite no espere segundos reales.
func TestMain(m *testing.M) {
	delayLogin = time.Millisecond
	delayUsuarios = time.Millisecond
	delayRegistros = time.Millisecond
	os.Exit(m.Run())
}

func newAuth() *AuthService {
	s := store.NewMemoryStore()
	s.Seed()
	return &AuthService{Store: s}
}

func TestLoginSuccess(t *testing.T) {
	auth := newAuth()

	casos := []struct {
		email    string
		password string
		wantID   string
	}{
		{"admin@test.com", "admin123", "1"},
		{"juan@test.com", "user123", "2"},
		{"maria@test.com", "user123", "3"},
	}

	for _, tc := range casos {
		res, err := auth.Login(context.Background(), tc.email, tc.password)
		require.NoError(t, err)
		require.True(t, res.Success, "login de %s debería funcionar", tc.email)
		assert.True(t, strings.HasPrefix(res.Token, "mock-token-"+tc.wantID+"-"),
			"el token debe llevar el id del usuario: %s", res.Token)
		require.NotNil(t, res.User)
		assert.Equal(t, tc.wantID, res.User.ID)
		assert.Equal(t, tc.email, res.User.Email)
	}
}

func TestLoginFailureMutatesNothing(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed()
	auth := &AuthService{Store: s}

	casos := []struct {
		nombre   string
		email    string
		password string
	}{
		{"password equivocado", "juan@test.com", "malo"},
		{"email desconocido", "nadie@test.com", "user123"},
		{"sensible a mayúsculas", "JUAN@test.com", "user123"},
		{"credenciales cruzadas", "juan@test.com", "admin123"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			res, err := auth.Login(context.Background(), tc.email, tc.password)
			require.NoError(t, err, "credenciales inválidas no son un error")
			assert.False(t, res.Success)
			assert.Empty(t, res.Token)
			assert.Nil(t, res.User)
		})
	}

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3, "los intentos fallidos no deben tocar el estado")
}

func TestLoginAbortsOnCanceledContext(t *testing.T) {
	auth := newAuth()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := auth.Login(ctx, "juan@test.com", "user123")
	assert.ErrorIs(t, err, context.Canceled)
}
