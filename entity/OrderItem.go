package entity

import "github.com/shopspring/decimal"

// OrderItem is one line of an order (DetalleOrden).
type OrderItem struct {
	ID          int64           `gorm:"column:idDetalleOrden" json:"idDetalleOrden,omitempty"`
	OrderID     int64           `gorm:"column:idOrden" json:"idOrden,omitempty"`
	ProductID   int64           `gorm:"column:idProducto" json:"idProducto"`
	ProductName string          `gorm:"column:nombreProducto" json:"nombreProducto,omitempty"`
	Quantity    int             `gorm:"column:cantidad" json:"cantidad"`
	Comment     string          `gorm:"column:comentario" json:"comentario"`
	UnitPrice   decimal.Decimal `gorm:"column:precioUnitario" json:"precioUnitario"`
	Total       decimal.Decimal `gorm:"column:total" json:"total"`
}
