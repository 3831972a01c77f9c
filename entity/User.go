package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64           `gorm:"column:idUsuario" json:"idUsuario"`
	Username     string          `gorm:"column:nombreUsuario" json:"nombreUsuario"`
	PasswordHash string          `gorm:"column:contrasenna" json:"-"`
	Name         string          `gorm:"column:nombre" json:"nombre"`
	LastName     string          `gorm:"column:apellidos" json:"apellidos"`
	RoleID       int64           `gorm:"column:idRol" json:"idRol"`
	RoleName     string          `gorm:"column:rol" json:"rol,omitempty"`
	Comments     string          `gorm:"column:comentarios" json:"comentarios"`
	Email        string          `gorm:"column:correo" json:"correo"`
	Commission   decimal.Decimal `gorm:"column:comision" json:"comision"`
	CreatedAt    *time.Time      `gorm:"column:fechaCreacion" json:"fechaCreacion,omitempty"`
}

type Role struct {
	ID   int64  `gorm:"column:idRol" json:"idRol"`
	Name string `gorm:"column:nombre" json:"nombre"`
}

// WaiterOrders counts the orders taken by each waiter.
type WaiterOrders struct {
	UserID     int64  `gorm:"column:idUsuario" json:"idUsuario"`
	Name       string `gorm:"column:nombre" json:"nombre"`
	LastName   string `gorm:"column:apellidos" json:"apellidos"`
	OrderCount int    `gorm:"column:cantidadOrdenes" json:"cantidadOrdenes"`
}

// UserUpdate carries the fields a partial update changes; nil keeps the
// stored value.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Name         *string
	LastName     *string
	RoleID       *int64
	Comments     *string
	Email        *string
	Commission   *decimal.Decimal
}
