package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jcamargo/panel-usuarios-backend/models"
)

// GormStore implementa Store sobre una base de datos real. Es el camino de
// evolución del mock: mismos contratos, persistencia de verdad y sin
// latencia artificial. Los ids aquí son UUID en vez de contador.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ===== Usuarios =====

func (g *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (g *GormStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	if err := g.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (g *GormStore) UpdateUser(ctx context.Context, id string, cambios UserUpdate) (models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNoEncontrado
		}
		return models.User{}, err
	}
	if cambios.Name != nil {
		u.Name = *cambios.Name
	}
	if cambios.Email != nil {
		u.Email = *cambios.Email
	}
	if cambios.Password != nil && *cambios.Password != "" {
		u.Password = *cambios.Password
	}
	if cambios.Role != nil {
		u.Role = *cambios.Role
	}
	if err := g.db.WithContext(ctx).Save(&u).Error; err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (g *GormStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	res := g.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ===== Estudios =====

func (g *GormStore) ListStudies(ctx context.Context, userID string) ([]models.Study, error) {
	var studies []models.Study
	q := g.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

func (g *GormStore) CreateStudy(ctx context.Context, s models.Study) (models.Study, error) {
	s.ID = uuid.NewString()
	if err := g.db.WithContext(ctx).Create(&s).Error; err != nil {
		return models.Study{}, err
	}
	return s, nil
}

func (g *GormStore) UpdateStudy(ctx context.Context, id string, cambios StudyUpdate) (models.Study, error) {
	var s models.Study
	if err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Study{}, ErrNoEncontrado
		}
		return models.Study{}, err
	}
	if cambios.Title != nil {
		s.Title = *cambios.Title
	}
	if cambios.Institution != nil {
		s.Institution = *cambios.Institution
	}
	if cambios.Year != nil {
		s.Year = *cambios.Year
	}
	if err := g.db.WithContext(ctx).Save(&s).Error; err != nil {
		return models.Study{}, err
	}
	return s, nil
}

func (g *GormStore) DeleteStudy(ctx context.Context, id string) (bool, error) {
	res := g.db.WithContext(ctx).Delete(&models.Study{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ===== Direcciones =====

func (g *GormStore) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	q := g.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (g *GormStore) CreateAddress(ctx context.Context, a models.Address) (models.Address, error) {
	a.ID = uuid.NewString()
	if err := g.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (g *GormStore) UpdateAddress(ctx context.Context, id string, cambios AddressUpdate) (models.Address, error) {
	var a models.Address
	if err := g.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Address{}, ErrNoEncontrado
		}
		return models.Address{}, err
	}
	if cambios.Street != nil {
		a.Street = *cambios.Street
	}
	if cambios.City != nil {
		a.City = *cambios.City
	}
	if cambios.Country != nil {
		a.Country = *cambios.Country
	}
	if cambios.Type != nil {
		a.Type = *cambios.Type
	}
	if err := g.db.WithContext(ctx).Save(&a).Error; err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (g *GormStore) DeleteAddress(ctx context.Context, id string) (bool, error) {
	res := g.db.WithContext(ctx).Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
