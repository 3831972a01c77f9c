package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type MovementRepository struct {
	DB *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{DB: db}
}

type movementDetailRow struct {
	IDMovimiento         int64     `gorm:"column:idMovimiento"`
	Fecha                time.Time `gorm:"column:fecha"`
	Motivo               string    `gorm:"column:motivo"`
	TipoMovimiento       string    `gorm:"column:tipoMovimiento"`
	TipoMovimientoNombre string    `gorm:"column:tipoMovimientoNombre"`
	IDUsuario            int64     `gorm:"column:idUsuario"`
	NombreCompleto       string    `gorm:"column:nombreCompleto"`
	entity.MovementItem
}

func groupMovements(rows []movementDetailRow) []entity.InventoryMovement {
	var out []entity.InventoryMovement
	index := map[int64]int{}
	for _, r := range rows {
		i, ok := index[r.IDMovimiento]
		if !ok {
			out = append(out, entity.InventoryMovement{
				ID:       r.IDMovimiento,
				Date:     r.Fecha,
				Reason:   r.Motivo,
				Kind:     r.TipoMovimiento,
				KindName: r.TipoMovimientoNombre,
				UserID:   r.IDUsuario,
				UserName: r.NombreCompleto,
				Items:    []entity.MovementItem{},
			})
			i = len(out) - 1
			index[r.IDMovimiento] = i
		}
		// movements without lines come back with a NULL product
		if r.MovementItem.ProductID == 0 {
			continue
		}
		out[i].Items = append(out[i].Items, r.MovementItem)
	}
	return out
}

func (r *MovementRepository) FindByID(ctx context.Context, id int64) (*entity.InventoryMovement, error) {
	var rows []movementDetailRow
	if err := call(ctx, r.DB, &rows, "sp_ObtenerMovimientoInventarioConDetalles", id); err != nil {
		return nil, err
	}
	ms := groupMovements(rows)
	if len(ms) == 0 {
		return nil, nil
	}
	return &ms[0], nil
}

func (r *MovementRepository) List(ctx context.Context) ([]entity.InventoryMovement, error) {
	var rows []movementDetailRow
	if err := call(ctx, r.DB, &rows, "sp_ObtenerTodosMovimientosConDetalles"); err != nil {
		return nil, err
	}
	return groupMovements(rows), nil
}

type movementLine struct {
	IDProducto         int64  `json:"idProducto"`
	CantidadMovimiento int    `json:"cantidadMovimiento"`
	Comentario         string `json:"comentario"`
}

// Create applies every line to stock and returns the movement id.
func (r *MovementRepository) Create(ctx context.Context, m *entity.InventoryMovement) (int64, error) {
	lines := make([]movementLine, 0, len(m.Items))
	for _, it := range m.Items {
		lines = append(lines, movementLine{IDProducto: it.ProductID, CantidadMovimiento: it.Quantity, Comentario: it.Comment})
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return 0, err
	}
	return insertedID(ctx, r.DB, "sp_RegistrarMovimientoInventario",
		m.Date, m.Reason, m.Kind, m.UserID, string(payload))
}
