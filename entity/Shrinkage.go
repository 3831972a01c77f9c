package entity

import "time"

// Shrinkage records stock lost to waste or damage (merma).
type Shrinkage struct {
	ID          int64     `gorm:"column:idMerma" json:"idMerma"`
	ProductID   int64     `gorm:"column:idProducto" json:"idProducto"`
	ProductName string    `gorm:"column:nombreProducto" json:"nombreProducto,omitempty"`
	Quantity    int       `gorm:"column:cantidad" json:"cantidad"`
	Date        time.Time `gorm:"column:fecha" json:"fecha"`
	Comment     string    `gorm:"column:comentario" json:"comentario"`
	Status      string    `gorm:"column:estado" json:"estado"`
}
