package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jcamargo/panel-usuarios-backend/models"
	"github.com/jcamargo/panel-usuarios-backend/store"
)

// LoginResult es el contrato del login: credenciales inválidas son un
// fallo estructurado (Success=false), nunca un error. El error solo se
// devuelve si el store falla.
type LoginResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Token   string             `json:"token,omitempty"`
	User    *models.PublicUser `json:"user,omitempty"`
}

type AuthService struct {
	Store store.Store
}

// Login busca un usuario con email y contraseña exactos (sensible a
// mayúsculas, sin normalizar). El token generado es solo un marcador de
// sesión, no tiene nada criptográfico.
func (a *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := store.Delay(ctx, delayLogin); err != nil {
		return LoginResult{}, err
	}

	users, err := a.Store.ListUsers(ctx)
	if err != nil {
		return LoginResult{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			token := fmt.Sprintf("mock-token-%s-%d", u.ID, time.Now().UnixMilli())
			pub := u.Public()
			return LoginResult{
				Success: true,
				Token:   token,
				User:    &pub,
			}, nil
		}
	}

	return LoginResult{Success: false, Message: "Credenciales inválidas"}, nil
}
