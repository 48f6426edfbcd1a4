package store

import (
	"context"
	"errors"
	"time"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

// ErrNoEncontrado se devuelve al actualizar un registro que no existe.
// Los deletes NO lo usan: borrar un id inexistente devuelve false sin error.
var ErrNoEncontrado = errors.New("registro no encontrado")

// UserUpdate son los cambios parciales de un usuario. Los campos nil no se
// tocan. Un Password nil o vacío conserva la contraseña almacenada.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.UserRole
}

type StudyUpdate struct {
	Title       *string
	Institution *string
	Year        *int
}

type AddressUpdate struct {
	Street  *string
	City    *string
	Country *string
	Type    *models.AddressType
}

// Store es el contrato de acceso a datos. La implementación por defecto es
// el mock en memoria; GormStore permite conectar una base real sin tocar a
// los que llaman.
type Store interface {
	// ListUsers devuelve los usuarios completos, contraseña incluida:
	// el servicio que llama es responsable de no exponerla.
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, cambios UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	// userID vacío devuelve la colección completa.
	ListStudies(ctx context.Context, userID string) ([]models.Study, error)
	CreateStudy(ctx context.Context, s models.Study) (models.Study, error)
	UpdateStudy(ctx context.Context, id string, cambios StudyUpdate) (models.Study, error)
	DeleteStudy(ctx context.Context, id string) (bool, error)

	ListAddresses(ctx context.Context, userID string) ([]models.Address, error)
	CreateAddress(ctx context.Context, a models.Address) (models.Address, error)
	UpdateAddress(ctx context.Context, id string, cambios AddressUpdate) (models.Address, error)
	DeleteAddress(ctx context.Context, id string) (bool, error)
}

// Delay simula la latencia de red de una API real. Si el contexto se
// cancela (el cliente abandonó la petición) aborta antes de aplicar nada.
func Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
