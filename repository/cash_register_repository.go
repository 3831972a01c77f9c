package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CashRegisterRepository struct {
	DB *gorm.DB
}

func NewCashRegisterRepository(db *gorm.DB) *CashRegisterRepository {
	return &CashRegisterRepository{DB: db}
}

func (r *CashRegisterRepository) Create(ctx context.Context, c *entity.CashRegister) error {
	return exec(ctx, r.DB, "sp_RegistrarCaja", c.Name, c.OpeningAmount, c.ClosingAmount, c.Assigned)
}

func (r *CashRegisterRepository) List(ctx context.Context) ([]entity.CashRegister, error) {
	var out []entity.CashRegister
	if err := call(ctx, r.DB, &out, "sp_ObtenerCajas"); err != nil {
		return nil, err
	}
	return out, nil
}

// Available lists the registers nobody holds.
func (r *CashRegisterRepository) Available(ctx context.Context) ([]entity.CashRegister, error) {
	var out []entity.CashRegister
	if err := call(ctx, r.DB, &out, "sp_CajasDisponibles"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CashRegisterRepository) ByUser(ctx context.Context, userID int64) ([]entity.CashRegister, error) {
	var out []entity.CashRegister
	if err := call(ctx, r.DB, &out, "sp_ObtenerCajaPorUsuario", userID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CashRegisterRepository) Update(ctx context.Context, id int64, c *entity.CashRegister) error {
	return exec(ctx, r.DB, "sp_ActualizarCaja", id, c.Name, c.OpeningAmount, c.ClosingAmount, c.Assigned)
}

func (r *CashRegisterRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarCajaPorId", id)
}

func (r *CashRegisterRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteIdCaja", id)
}

func (r *CashRegisterRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	return exists(ctx, r.DB, "sp_ExisteNombreCaja", name)
}

func (r *CashRegisterRepository) UserHasRegister(ctx context.Context, userID int64) (bool, error) {
	return exists(ctx, r.DB, "sp_ValidarUsuarioTieneCaja", userID)
}

func (r *CashRegisterRepository) Assign(ctx context.Context, registerID, userID int64, initial decimal.Decimal) error {
	return exec(ctx, r.DB, "sp_AsignarCaja", registerID, userID, initial)
}

// SetAssigned opens or closes the register.
func (r *CashRegisterRepository) SetAssigned(ctx context.Context, registerID int64, assigned bool) error {
	return exec(ctx, r.DB, "sp_ActualizarEstadoCaja", registerID, assigned)
}
