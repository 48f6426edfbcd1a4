package models

type UserRole string

const (
	RoleAdmin UserRole = "admin" // Administrador del sistema
	RoleUser  UserRole = "user"  // Usuario estándar
)

type User struct {
	ID       string   `gorm:"primaryKey;size:36" json:"id"`
	Name     string   `gorm:"size:150;not null" json:"name"`
	Email    string   `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"type:text;not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}

// PublicUser es la vista del usuario que sale por la API: nunca incluye password.
type PublicUser struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
