package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

// MemoryStore guarda las tres colecciones en memoria conservando el orden
// de inserción. Los ids se asignan con un contador monótono por colección,
// así un id borrado nunca se reutiliza.
type MemoryStore struct {
	mu sync.RWMutex

	users     []models.User
	studies   []models.Study
	addresses []models.Address

	nextUser    int
	nextStudy   int
	nextAddress int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed carga los datos de ejemplo con los que arranca el mock.
func (m *MemoryStore) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = []models.User{
		{ID: "1", Name: "Admin Usuario", Email: "admin@test.com", Password: "admin123", Role: models.RoleAdmin},
		{ID: "2", Name: "Juan Pérez", Email: "juan@test.com", Password: "user123", Role: models.RoleUser},
		{ID: "3", Name: "María García", Email: "maria@test.com", Password: "user123", Role: models.RoleUser},
	}
	m.studies = []models.Study{
		{ID: "1", UserID: "2", Title: "Ingeniería en Sistemas", Institution: "Universidad Nacional", Year: 2020},
		{ID: "2", UserID: "2", Title: "Curso React", Institution: "Platzi", Year: 2023},
		{ID: "3", UserID: "3", Title: "Licenciatura en Administración", Institution: "Universidad Central", Year: 2019},
	}
	m.addresses = []models.Address{
		{ID: "1", UserID: "2", Street: "Calle 123 #45-67", City: "Bogotá", Country: "Colombia", Type: models.AddressCasa},
		{ID: "2", UserID: "2", Street: "Carrera 15 #30-25", City: "Bogotá", Country: "Colombia", Type: models.AddressTrabajo},
		{ID: "3", UserID: "3", Street: "Avenida 68 #25-30", City: "Medellín", Country: "Colombia", Type: models.AddressCasa},
	}
	m.nextUser, m.nextStudy, m.nextAddress = 3, 3, 3
}

// ===== Usuarios =====

func (m *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemoryStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextUser++
	u.ID = strconv.Itoa(m.nextUser)
	m.users = append(m.users, u)
	return u, nil
}

func (m *MemoryStore) UpdateUser(ctx context.Context, id string, cambios UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID != id {
			continue
		}
		if cambios.Name != nil {
			m.users[i].Name = *cambios.Name
		}
		if cambios.Email != nil {
			m.users[i].Email = *cambios.Email
		}
		// Password vacío u omitido conserva la contraseña anterior
		if cambios.Password != nil && *cambios.Password != "" {
			m.users[i].Password = *cambios.Password
		}
		if cambios.Role != nil {
			m.users[i].Role = *cambios.Role
		}
		return m.users[i], nil
	}
	return models.User{}, ErrNoEncontrado
}

func (m *MemoryStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ===== Estudios =====

func (m *MemoryStore) ListStudies(ctx context.Context, userID string) ([]models.Study, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if userID == "" {
		out := make([]models.Study, len(m.studies))
		copy(out, m.studies)
		return out, nil
	}
	out := []models.Study{}
	for _, s := range m.studies {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateStudy(ctx context.Context, s models.Study) (models.Study, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextStudy++
	s.ID = strconv.Itoa(m.nextStudy)
	m.studies = append(m.studies, s)
	return s, nil
}

func (m *MemoryStore) UpdateStudy(ctx context.Context, id string, cambios StudyUpdate) (models.Study, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.studies {
		if m.studies[i].ID != id {
			continue
		}
		if cambios.Title != nil {
			m.studies[i].Title = *cambios.Title
		}
		if cambios.Institution != nil {
			m.studies[i].Institution = *cambios.Institution
		}
		if cambios.Year != nil {
			m.studies[i].Year = *cambios.Year
		}
		return m.studies[i], nil
	}
	return models.Study{}, ErrNoEncontrado
}

func (m *MemoryStore) DeleteStudy(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.studies {
		if m.studies[i].ID == id {
			m.studies = append(m.studies[:i], m.studies[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ===== Direcciones =====

func (m *MemoryStore) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if userID == "" {
		out := make([]models.Address, len(m.addresses))
		copy(out, m.addresses)
		return out, nil
	}
	out := []models.Address{}
	for _, a := range m.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateAddress(ctx context.Context, a models.Address) (models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextAddress++
	a.ID = strconv.Itoa(m.nextAddress)
	m.addresses = append(m.addresses, a)
	return a, nil
}

func (m *MemoryStore) UpdateAddress(ctx context.Context, id string, cambios AddressUpdate) (models.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.addresses {
		if m.addresses[i].ID != id {
			continue
		}
		if cambios.Street != nil {
			m.addresses[i].Street = *cambios.Street
		}
		if cambios.City != nil {
			m.addresses[i].City = *cambios.City
		}
		if cambios.Country != nil {
			m.addresses[i].Country = *cambios.Country
		}
		if cambios.Type != nil {
			m.addresses[i].Type = *cambios.Type
		}
		return m.addresses[i], nil
	}
	return models.Address{}, ErrNoEncontrado
}

func (m *MemoryStore) DeleteAddress(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.addresses {
		if m.addresses[i].ID == id {
			m.addresses = append(m.addresses[:i], m.addresses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
