package repository

import (
	"context"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

// AuthRepository covers credentials, sessions and password recovery.
type AuthRepository struct {
	DB *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{DB: db}
}

// Credentials returns the user with its password hash, or nil.
func (r *AuthRepository) Credentials(ctx context.Context, username string) (*entity.User, error) {
	return one[entity.User](ctx, r.DB, "sp_ObtenerCredenciales", username)
}

func (r *AuthRepository) CredentialsByID(ctx context.Context, id int64) (*entity.User, error) {
	return one[entity.User](ctx, r.DB, "sp_ObtenerCredencialesPorId", id)
}

// RecordLogin stamps the user's last session start.
func (r *AuthRepository) RecordLogin(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_IniciarSesion", id)
}

func (r *AuthRepository) SetRecoveryToken(ctx context.Context, email, token string, expires time.Time) error {
	return exec(ctx, r.DB, "sp_ActualizarTokenUsuario", email, token, expires)
}

// VerifyRecoveryToken is true when the token matches and has not expired.
func (r *AuthRepository) VerifyRecoveryToken(ctx context.Context, email, token string) (bool, error) {
	return exists(ctx, r.DB, "sp_VerificarTokenRecuperacion", email, token)
}

func (r *AuthRepository) ChangePassword(ctx context.Context, email, hash string) error {
	return exec(ctx, r.DB, "sp_CambiarContrasenna", email, hash)
}

func (r *AuthRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return exec(ctx, r.DB, "sp_ActualizarContrasenna", id, hash)
}

func (r *AuthRepository) DeleteAccount(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_EliminarMiCuenta", id)
}
