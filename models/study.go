package models

// Study representa un estudio (título académico o curso) de un usuario.
type Study struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	UserID      string `gorm:"size:36;index;not null" json:"userId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Institution string `gorm:"size:255;not null" json:"institution"`
	Year        int    `gorm:"not null" json:"year"` // entre 1950 y 2030
}
