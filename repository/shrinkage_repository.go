package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type ShrinkageRepository struct {
	DB *gorm.DB
}

func NewShrinkageRepository(db *gorm.DB) *ShrinkageRepository {
	return &ShrinkageRepository{DB: db}
}

func (r *ShrinkageRepository) Create(ctx context.Context, s *entity.Shrinkage) error {
	return exec(ctx, r.DB, "sp_RegistrarMerma", s.ProductID, s.Quantity, s.Date, s.Comment, s.Status)
}

func (r *ShrinkageRepository) List(ctx context.Context) ([]entity.Shrinkage, error) {
	var out []entity.Shrinkage
	if err := call(ctx, r.DB, &out, "sp_ObtenerTodasLasMermas"); err != nil {
		return nil, err
	}
	return out, nil
}
