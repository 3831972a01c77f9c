package entity

import "time"

// StockCount is a physical inventory session (toma física).
type StockCount struct {
	ID        int64     `gorm:"column:idToma" json:"idToma"`
	CountedAt time.Time `gorm:"column:fechaToma" json:"fechaToma"`
	Reason    string    `gorm:"column:motivo" json:"motivo"`
	UserID    int64     `gorm:"column:idUsuario" json:"idUsuario"`
}
