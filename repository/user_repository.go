package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create expects PasswordHash to already hold the bcrypt hash.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return exec(ctx, r.DB, "sp_RegistrarUsuario", u.Username, u.PasswordHash, u.Name,
		u.LastName, u.RoleID, u.Comments, u.Email, u.Commission)
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := call(ctx, r.DB, &out, "sp_ObtenerTodosLosUsuarios"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return one[entity.User](ctx, r.DB, "sp_ObtenerUsuarioPorId", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return one[entity.User](ctx, r.DB, "sp_ObtenerUsuarioPorNombreUsuario", username)
}

func (r *UserRepository) Update(ctx context.Context, id int64, u entity.UserUpdate) error {
	return exec(ctx, r.DB, "sp_ActualizarUsuario", id, u.Username, u.PasswordHash, u.Name,
		u.LastName, u.RoleID, u.Comments, u.Email, u.Commission)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarUsuarioPorId", id)
}

func (r *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.DB, "sp_existeNombreUsuario", username)
}

func (r *UserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.DB, "sp_existeCorreoUsuario", email)
}

func (r *UserRepository) ExistsID(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.DB, "sp_existeIdUsuario", id)
}

func (r *UserRepository) Roles(ctx context.Context) ([]entity.Role, error) {
	var out []entity.Role
	if err := call(ctx, r.DB, &out, "sp_ObtenerRoles"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) WaitersWithOrders(ctx context.Context) ([]entity.WaiterOrders, error) {
	var out []entity.WaiterOrders
	if err := call(ctx, r.DB, &out, "sp_ContarOrdenesPorUsuario"); err != nil {
		return nil, err
	}
	return out, nil
}

// Commissions totals every waiter's commission between the two dates.
func (r *UserRepository) Commissions(ctx context.Context, from, to string) ([]entity.WaiterCommission, error) {
	var out []entity.WaiterCommission
	if err := call(ctx, r.DB, &out, "sp_CalcularComisionesPorFecha", from, to); err != nil {
		return nil, err
	}
	return out, nil
}

// CommissionReport lists the per-invoice commissions of one waiter.
func (r *UserRepository) CommissionReport(ctx context.Context, userID int64, from, to string) ([]entity.Commission, error) {
	var out []entity.Commission
	if err := call(ctx, r.DB, &out, "sp_CalcularComisionesPorUsuario", from, to, userID); err != nil {
		return nil, err
	}
	return out, nil
}
