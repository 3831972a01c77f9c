package entity

import "time"

type Client struct {
	ID        int64      `gorm:"column:idCliente" json:"idCliente"`
	CreatedAt *time.Time `gorm:"column:fechaCreacion" json:"fechaCreacion,omitempty"`
	Cedula    string     `gorm:"column:cedula" json:"cedula"`
	Name      string     `gorm:"column:nombre" json:"nombre"`
	LastName  string     `gorm:"column:apellidos" json:"apellidos"`
	Email     string     `gorm:"column:correoElectronico" json:"correoElectronico"`
	Phone     string     `gorm:"column:telefono" json:"telefono"`
	Address   string     `gorm:"column:direccion" json:"direccion"`
	Comment   string     `gorm:"column:comentario" json:"comentario"`
	Active    bool       `gorm:"column:estado" json:"estado"`
}

// ClientUpdate carries the fields a partial update changes; nil keeps the
// stored value.
type ClientUpdate struct {
	Cedula   *string
	Name     *string
	LastName *string
	Email    *string
	Phone    *string
	Address  *string
	Comment  *string
	Active   *bool
}
