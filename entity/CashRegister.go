package entity

import "github.com/shopspring/decimal"

// CashRegister is a caja; at most one user holds it during a shift.
type CashRegister struct {
	ID            int64           `gorm:"column:idCaja" json:"idCaja"`
	Name          string          `gorm:"column:nombre" json:"nombre"`
	OpeningAmount decimal.Decimal `gorm:"column:montoApertura" json:"montoApertura"`
	ClosingAmount decimal.Decimal `gorm:"column:montoCierre" json:"montoCierre"`
	Assigned      bool            `gorm:"column:estaAsignada" json:"estaAsignada"`
	UserID        *int64          `gorm:"column:idUsuario" json:"idUsuario,omitempty"`
}
