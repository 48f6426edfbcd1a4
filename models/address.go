package models

type AddressType string

const (
	AddressCasa    AddressType = "Casa"
	AddressTrabajo AddressType = "Trabajo"
	AddressOtro    AddressType = "Otro"
)

// Address representa una dirección registrada por un usuario.
type Address struct {
	ID      string      `gorm:"primaryKey;size:36" json:"id"`
	UserID  string      `gorm:"size:36;index;not null" json:"userId"`
	Street  string      `gorm:"size:255;not null" json:"street"`
	City    string      `gorm:"size:150;not null" json:"city"`
	Country string      `gorm:"size:150;not null" json:"country"`
	Type    AddressType `gorm:"type:varchar(20);not null" json:"type"`
}
