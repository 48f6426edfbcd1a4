package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

// SessionManager es la única fuente de verdad de quién tiene sesión
// iniciada. Mantiene las sesiones en memoria y las persiste en un archivo
// JSON para que sobrevivan a un reinicio, igual que el sessionStorage del
// cliente original.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	file     string
	ready    bool

	auth *AuthService
}

func NewSessionManager(auth *AuthService, file string) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]models.Session),
		file:     file,
		auth:     auth,
	}
}

// Restore carga las sesiones persistidas al arrancar. Se confía en lo
// leído sin revalidar credenciales; las entradas a las que les falte el
// token o el usuario se descartan. Un archivo inexistente no es error.
func (sm *SessionManager) Restore() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	defer func() { sm.ready = true }()

	data, err := os.ReadFile(sm.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("leyendo archivo de sesiones: %w", err)
	}

	var guardadas []models.Session
	if err := json.Unmarshal(data, &guardadas); err != nil {
		return fmt.Errorf("archivo de sesiones corrupto: %w", err)
	}

	for _, s := range guardadas {
		if !s.Valid() {
			continue
		}
		sm.sessions[s.Token] = s
	}
	return nil
}

// Ready indica si la restauración inicial ya terminó. Mientras no lo esté,
// las rutas protegidas muestran un placeholder de carga en vez de redirigir.
func (sm *SessionManager) Ready() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.ready
}

// Login delega en el AuthService y, solo si hay éxito, registra y persiste
// la sesión. Un login fallido no muta nada.
func (sm *SessionManager) Login(ctx context.Context, email, password string) (LoginResult, error) {
	res, err := sm.auth.Login(ctx, email, password)
	if err != nil || !res.Success {
		return res, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[res.Token] = models.Session{Token: res.Token, User: *res.User}
	sm.persistLocked()
	return res, nil
}

// Logout elimina la sesión en memoria y del archivo. Cerrar una sesión
// inexistente es un no-op.
func (sm *SessionManager) Logout(token string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[token]; !ok {
		return
	}
	delete(sm.sessions, token)
	sm.persistLocked()
}

// IsAuthenticated se deriva de la presencia de token y usuario, nunca es
// un flag aparte.
func (sm *SessionManager) IsAuthenticated(token string) bool {
	_, ok := sm.Session(token)
	return ok
}

func (sm *SessionManager) Session(token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, ok := sm.sessions[token]
	if !ok || !s.Valid() {
		return models.Session{}, false
	}
	return s, true
}

// SyncUser actualiza el usuario en todas sus sesiones activas y resincroniza
// el archivo, para que una edición de perfil no se pierda tras un reinicio.
func (sm *SessionManager) SyncUser(user models.PublicUser) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cambiado := false
	for token, s := range sm.sessions {
		if s.User.ID == user.ID {
			s.User = user
			sm.sessions[token] = s
			cambiado = true
		}
	}
	if cambiado {
		sm.persistLocked()
	}
}

// persistLocked reescribe el archivo de sesiones. Requiere sm.mu tomado.
func (sm *SessionManager) persistLocked() {
	guardadas := make([]models.Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		guardadas = append(guardadas, s)
	}

	data, err := json.MarshalIndent(guardadas, "", "  ")
	if err != nil {
		log.Println("No se pudo serializar las sesiones:", err)
		return
	}
	if err := os.WriteFile(sm.file, data, 0o600); err != nil {
		log.Println("No se pudo escribir el archivo de sesiones:", err)
	}
}
