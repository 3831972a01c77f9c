package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is one invoice's contribution to a waiter's commission.
type Commission struct {
	InvoiceID   int64           `gorm:"column:idFactura" json:"idFactura"`
	UserID      int64           `gorm:"column:idUsuario" json:"idUsuario"`
	Total       decimal.Decimal `gorm:"column:Total" json:"Total"`
	Amount      decimal.Decimal `gorm:"column:Comision" json:"Comision"`
	Name        string          `gorm:"column:Nombre" json:"Nombre"`
	LastName    string          `gorm:"column:Apellidos" json:"Apellidos"`
	Email       string          `gorm:"column:Correo" json:"Correo"`
	Rate        decimal.Decimal `gorm:"column:ComisionUsuario" json:"ComisionUsuario"`
	Role        string          `gorm:"column:DescripcionRol" json:"DescripcionRol"`
	PeriodStart time.Time       `gorm:"column:FechaInicio" json:"FechaInicio"`
	PeriodEnd   time.Time       `gorm:"column:FechaFin" json:"FechaFin"`
}

// WaiterCommission aggregates commissions per waiter for a date range.
type WaiterCommission struct {
	UserID     int64           `gorm:"column:idUsuario" json:"idUsuario"`
	Name       string          `gorm:"column:Nombre" json:"Nombre"`
	LastName   string          `gorm:"column:Apellidos" json:"Apellidos"`
	Invoices   int             `gorm:"column:CantidadFacturas" json:"CantidadFacturas"`
	TotalSales decimal.Decimal `gorm:"column:TotalVentas" json:"TotalVentas"`
	Amount     decimal.Decimal `gorm:"column:TotalComision" json:"TotalComision"`
}
