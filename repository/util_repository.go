package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type UtilRepository struct {
	DB *gorm.DB
}

func NewUtilRepository(db *gorm.DB) *UtilRepository {
	return &UtilRepository{DB: db}
}

// Now returns the database clock, which every procedure stamps rows with.
func (r *UtilRepository) Now(ctx context.Context) (time.Time, error) {
	var rows []struct {
		Hora time.Time `gorm:"column:hora"`
	}
	if err := call(ctx, r.DB, &rows, "sp_ObtenerHora"); err != nil {
		return time.Time{}, err
	}
	if len(rows) == 0 {
		return time.Now(), nil
	}
	return rows[0].Hora, nil
}
