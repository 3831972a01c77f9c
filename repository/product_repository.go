package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) list(ctx context.Context, proc string, args ...any) ([]entity.Product, error) {
	var out []entity.Product
	if err := call(ctx, r.DB, &out, proc, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, "sp_ObtenerProductos")
}

// ListDishes returns the products of kitchen categories.
func (r *ProductRepository) ListDishes(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, "sp_ObtenerProductosPlatos")
}

// ListGoods returns the products sold as stock items.
func (r *ProductRepository) ListGoods(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, "sp_ObtenerProductosProductos")
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryName string) ([]entity.Product, error) {
	return r.list(ctx, "sp_ObtenerProductosPorCategoria", categoryName)
}

func (r *ProductRepository) TopSellers(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, "sp_Top3ProductosMasOrdenados")
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return one[entity.Product](ctx, r.DB, "sp_ObtenerProductoPorId", id)
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return exec(ctx, r.DB, "sp_RegistrarProducto", p.Name, p.Description, p.Photo,
		p.CategoryID, p.Price, p.Quantity, p.Comment, p.Active)
}

// Update keeps the stored photo when p.Photo is nil.
func (r *ProductRepository) Update(ctx context.Context, id int64, p *entity.Product) error {
	return exec(ctx, r.DB, "sp_ActualizarProducto", id, p.Name, p.Description, p.Photo,
		p.CategoryID, p.Price, p.Quantity, p.Comment, p.Active)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarProductoPorId", id)
}

func (r *ProductRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_existeIdProducto", id)
}

func (r *ProductRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.DB, "sp_existeNombreProducto", name)
}
