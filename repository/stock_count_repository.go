package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type StockCountRepository struct {
	DB *gorm.DB
}

func NewStockCountRepository(db *gorm.DB) *StockCountRepository {
	return &StockCountRepository{DB: db}
}

func (r *StockCountRepository) Create(ctx context.Context, s *entity.StockCount) error {
	return exec(ctx, r.DB, "sp_RegistrarToma", s.CountedAt, s.Reason, s.UserID)
}

func (r *StockCountRepository) ProductExists(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.DB, "sp_existeNombreProducto", name)
}

// SetCounted stores the counted quantity, keeping the previous one for the
// differences report.
func (r *StockCountRepository) SetCounted(ctx context.Context, name string, quantity int) error {
	return exec(ctx, r.DB, "sp_ActualizarCantidadProducto", name, quantity)
}

// ReportRows returns stock products with current and previous quantities.
func (r *StockCountRepository) ReportRows(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := call(ctx, r.DB, &out, "sp_ObtenerProductosProductosReporte"); err != nil {
		return nil, err
	}
	return out, nil
}
