package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(ctx context.Context, t *entity.Table) error {
	return exec(ctx, r.DB, "sp_RegistrarMesa", t.Name, t.Status)
}

func (r *TableRepository) List(ctx context.Context) ([]entity.Table, error) {
	var out []entity.Table
	if err := call(ctx, r.DB, &out, "sp_ObtenerMesas"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TableRepository) Update(ctx context.Context, id int64, t *entity.Table) error {
	return exec(ctx, r.DB, "sp_ActualizarMesa", id, t.Name, t.Status)
}

func (r *TableRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarMesaPorId", id)
}

func (r *TableRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteIdMesa", id)
}

func (r *TableRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteNombreMesa", name)
}

// FindOccupied returns the table when an unpaid invoice is seated at it,
// nil when it is free.
func (r *TableRepository) FindOccupied(ctx context.Context, id int64) (*entity.Table, error) {
	return one[entity.Table](ctx, r.DB, "sp_ObtenerMesaOcupada", id)
}
