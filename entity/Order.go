package entity

import "time"

// Order is a dine-in tab. Items is filled by the repository from the
// flattened detail rows and is never a column.
type Order struct {
	ID        int64     `gorm:"column:idOrden" json:"idOrden"`
	OrderedAt time.Time `gorm:"column:fechaOrden" json:"fechaOrden"`
	UserID    int64     `gorm:"column:idUsuario" json:"idUsuario"`
	ClientID  int64     `gorm:"column:idCliente" json:"idCliente"`
	Comment   string    `gorm:"column:comentario" json:"comentario"`
	Status    string    `gorm:"column:estado" json:"estado"`
	TableID   int64     `gorm:"column:idMesa" json:"idMesa"`
	TableName string    `gorm:"column:nombreMesa" json:"nombreMesa,omitempty"`

	Items []OrderItem `gorm:"-" json:"detalles"`
}
