package entity

import "time"

type InventoryMovement struct {
	ID       int64     `gorm:"column:idMovimiento" json:"idMovimiento"`
	Date     time.Time `gorm:"column:fecha" json:"fecha"`
	Reason   string    `gorm:"column:motivo" json:"motivo"`
	Kind     string    `gorm:"column:tipoMovimiento" json:"tipoMovimiento"`
	KindName string    `gorm:"column:tipoMovimientoNombre" json:"tipoMovimientoNombre,omitempty"`
	UserID   int64     `gorm:"column:idUsuario" json:"idUsuario"`
	UserName string    `gorm:"column:nombreCompleto" json:"nombreCompleto,omitempty"`

	Items []MovementItem `gorm:"-" json:"movimientos"`
}

type MovementItem struct {
	ID          int64  `gorm:"column:idDetalleMovimiento" json:"idDetalleMovimiento,omitempty"`
	ProductID   int64  `gorm:"column:idProducto" json:"idProducto"`
	ProductName string `gorm:"column:nombreProducto" json:"nombreProducto,omitempty"`
	Quantity    int    `gorm:"column:cantidadMovimiento" json:"cantidadMovimiento"`
	Previous    int    `gorm:"column:cantidadVieja" json:"cantidadVieja"`
	Current     int    `gorm:"column:cantidadActual" json:"cantidadActual"`
	Comment     string `gorm:"column:comentarioDetalle" json:"comentario"`
}
