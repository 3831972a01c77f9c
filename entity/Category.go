package entity

type Category struct {
	ID          int64  `gorm:"column:idCategoria" json:"idCategoria"`
	Description string `gorm:"column:descripcion" json:"descripcion"`
	Active      bool   `gorm:"column:estado" json:"estado"`
	Kind        string `gorm:"column:tipoCategoria" json:"tipoCategoria"`
}
