package entity

// Table is a dine-in table (mesa). Occupancy is derived by the database from
// pending invoices.
type Table struct {
	ID     int64  `gorm:"column:idMesa" json:"idMesa"`
	Name   string `gorm:"column:nombre" json:"nombre"`
	Status string `gorm:"column:estado" json:"estado"`
}
