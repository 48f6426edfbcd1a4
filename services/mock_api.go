package services

import (
	"context"
	"time"

	"github.com/jcamargo/panel-usuarios-backend/models"
	"github.com/jcamargo/panel-usuarios-backend/store"
)

// Latencias fijas del mock, iguales a las de la API original.
// Son variables para que los tests puedan acortarlas.
var (
	delayLogin     = 1000 * time.Millisecond
	delayUsuarios  = 500 * time.Millisecond
	delayRegistros = 300 * time.Millisecond
)

// MockAPI es la superficie CRUD sobre el store. Cada operación espera la
// latencia simulada antes de tocar los datos, como haría una API real.
// No valida nada: la validación es responsabilidad del que llama.
type MockAPI struct {
	Store store.Store
}

// ===== Usuarios =====

// GetUsers devuelve todos los usuarios sin contraseña.
func (m *MockAPI) GetUsers(ctx context.Context) ([]models.PublicUser, error) {
	if err := store.Delay(ctx, delayUsuarios); err != nil {
		return nil, err
	}
	users, err := m.Store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// CreateUser no comprueba unicidad de email: eso queda en manos del que
// llama, igual que en el mock original.
func (m *MockAPI) CreateUser(ctx context.Context, u models.User) (models.PublicUser, error) {
	if err := store.Delay(ctx, delayUsuarios); err != nil {
		return models.PublicUser{}, err
	}
	creado, err := m.Store.CreateUser(ctx, u)
	if err != nil {
		return models.PublicUser{}, err
	}
	return creado.Public(), nil
}

func (m *MockAPI) UpdateUser(ctx context.Context, id string, cambios store.UserUpdate) (models.PublicUser, error) {
	if err := store.Delay(ctx, delayUsuarios); err != nil {
		return models.PublicUser{}, err
	}
	actualizado, err := m.Store.UpdateUser(ctx, id, cambios)
	if err != nil {
		return models.PublicUser{}, err
	}
	return actualizado.Public(), nil
}

// DeleteUser devuelve false si el id no existe, sin error. No borra en
// cascada los estudios ni direcciones del usuario.
func (m *MockAPI) DeleteUser(ctx context.Context, id string) (bool, error) {
	if err := store.Delay(ctx, delayUsuarios); err != nil {
		return false, err
	}
	return m.Store.DeleteUser(ctx, id)
}

// ===== Estudios =====

// GetStudies devuelve los estudios de un usuario, o todos si userID es vacío.
func (m *MockAPI) GetStudies(ctx context.Context, userID string) ([]models.Study, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return nil, err
	}
	return m.Store.ListStudies(ctx, userID)
}

func (m *MockAPI) CreateStudy(ctx context.Context, s models.Study) (models.Study, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return models.Study{}, err
	}
	return m.Store.CreateStudy(ctx, s)
}

func (m *MockAPI) UpdateStudy(ctx context.Context, id string, cambios store.StudyUpdate) (models.Study, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return models.Study{}, err
	}
	return m.Store.UpdateStudy(ctx, id, cambios)
}

func (m *MockAPI) DeleteStudy(ctx context.Context, id string) (bool, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return false, err
	}
	return m.Store.DeleteStudy(ctx, id)
}

// ===== Direcciones =====

// GetAddresses devuelve las direcciones de un usuario, o todas si userID es vacío.
func (m *MockAPI) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return nil, err
	}
	return m.Store.ListAddresses(ctx, userID)
}

func (m *MockAPI) CreateAddress(ctx context.Context, a models.Address) (models.Address, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return models.Address{}, err
	}
	return m.Store.CreateAddress(ctx, a)
}

func (m *MockAPI) UpdateAddress(ctx context.Context, id string, cambios store.AddressUpdate) (models.Address, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return models.Address{}, err
	}
	return m.Store.UpdateAddress(ctx, id, cambios)
}

func (m *MockAPI) DeleteAddress(ctx context.Context, id string) (bool, error) {
	if err := store.Delay(ctx, delayRegistros); err != nil {
		return false, err
	}
	return m.Store.DeleteAddress(ctx, id)
}
