package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := call(ctx, r.DB, &out, "sp_ObtenerCategorias"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return exec(ctx, r.DB, "sp_RegistrarCategoria", c.Description, c.Active, c.Kind)
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, c *entity.Category) error {
	return exec(ctx, r.DB, "sp_ActualizarCategoria", id, c.Description, c.Active, c.Kind)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarCategoriaPorId", id)
}

func (r *CategoryRepository) ExistsDescription(ctx context.Context, description string) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteDescripcionCategoria", description)
}

func (r *CategoryRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteIdCategoria", id)
}

// InUse reports whether any product still references the category.
func (r *CategoryRepository) InUse(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteCategoriaEnProducto", id)
}
