package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `gorm:"column:idProducto" json:"idProducto"`
	CreatedAt    *time.Time      `gorm:"column:fechaCreacion" json:"fechaCreacion,omitempty"`
	Name         string          `gorm:"column:nombre" json:"nombre"`
	Description  string          `gorm:"column:descripcion" json:"descripcion"`
	Photo        []byte          `gorm:"column:foto" json:"-"`
	CategoryID   int64           `gorm:"column:idCategoria" json:"idCategoria"`
	CategoryName string          `gorm:"column:nombreCategoria" json:"nombreCategoria,omitempty"`
	Price        decimal.Decimal `gorm:"column:precio" json:"precio"`
	Quantity     int             `gorm:"column:cantidad" json:"cantidad"`
	PrevQuantity *int            `gorm:"column:cantidadVieja" json:"cantidadVieja,omitempty"`
	TotalOrdered *int            `gorm:"column:totalProductos" json:"totalProductos,omitempty"`
	Comment      string          `gorm:"column:comentario" json:"comentario"`
	Active       bool            `gorm:"column:estado" json:"estado"`
	ImageURL     string          `gorm:"-" json:"imagenUrl,omitempty"`
}
