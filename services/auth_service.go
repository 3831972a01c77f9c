package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/pkg/mailer"
	"github.com/Techkepper/PoskepperApi/utils"
)

const (
	msgBadCredentials  = "Nombre de usuario o contraseña incorrectos"
	msgWrongPassword   = "La contraseña actual es incorrecta"
	msgUserNotFound    = "Usuario no encontrado"
	msgEmailNotFound   = "Correo no encontrado"
	msgInvalidCode     = "Código incorrecto o expirado"
	msgCodeNotVerified = "Debe verificar el código de recuperación antes de cambiar la contraseña"
	msgWeakPassword    = "La contraseña debe tener al menos 4 letras minúsculas y 4 números"
	recoverySubject    = "Restablecimiento de Contraseña"
	recoveryBodyFormat = "Tu token de restablecimiento de contraseña es: %s. Este token expirará el: %s"
)

type CredentialStore interface {
	Credentials(ctx context.Context, username string) (*entity.User, error)
	CredentialsByID(ctx context.Context, id int64) (*entity.User, error)
	RecordLogin(ctx context.Context, id int64) error
	SetRecoveryToken(ctx context.Context, email, token string, expires time.Time) error
	VerifyRecoveryToken(ctx context.Context, email, token string) (bool, error)
	ChangePassword(ctx context.Context, email, hash string) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	DeleteAccount(ctx context.Context, id int64) error
}

type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

// AuthService handles login, session tokens and password recovery.
type AuthService struct {
	creds       CredentialStore
	users       UserLookup
	mail        mailer.Sender
	jwtSecret   string
	jwtTTL      time.Duration
	recoveryTTL time.Duration

	now  func() time.Time
	code func() (string, error)

	// verified holds emails whose recovery code passed VerifyRecovery,
	// keyed by lowercased email, until the code would have expired.
	mu       sync.Mutex
	verified map[string]time.Time
}

func NewAuthService(creds CredentialStore, users UserLookup, mail mailer.Sender, secret string, ttl, recoveryTTL time.Duration) *AuthService {
	return &AuthService{
		creds:       creds,
		users:       users,
		mail:        mail,
		jwtSecret:   secret,
		jwtTTL:      ttl,
		recoveryTTL: recoveryTTL,
		now:         time.Now,
		code:        recoveryCode,
		verified:    make(map[string]time.Time),
	}
}

// recoveryCode is a uniformly random 4-digit code in [1000, 9999].
func recoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprint(1000 + n.Int64()), nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.creds.Credentials(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || utils.ComparePassword(user.PasswordHash, password) != nil {
		return "", nil, apperr.Unauthorizedf(msgBadCredentials)
	}
	if err := s.creds.RecordLogin(ctx, user.ID); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.RoleName, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf(msgUserNotFound)
	}
	return user, nil
}

// RequestRecovery stores a short-lived code for the account and mails it.
func (s *AuthService) RequestRecovery(ctx context.Context, email string) error {
	ok, err := s.users.ExistsEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf(msgEmailNotFound)
	}

	code, err := s.code()
	if err != nil {
		return err
	}
	expires := s.now().Add(s.recoveryTTL)
	if err := s.creds.SetRecoveryToken(ctx, email, code, expires); err != nil {
		return err
	}
	body := fmt.Sprintf(recoveryBodyFormat, code, expires.Format("02/01/2006 15:04:05"))
	return s.mail.Send(ctx, email, recoverySubject, body)
}

func (s *AuthService) VerifyRecovery(ctx context.Context, email, code string) error {
	ok, err := s.creds.VerifyRecoveryToken(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Unauthorizedf(msgInvalidCode)
	}
	s.mu.Lock()
	s.verified[strings.ToLower(email)] = s.now().Add(s.recoveryTTL)
	s.mu.Unlock()
	return nil
}

// ChangePassword sets a new password for an email whose recovery code was
// verified within the recovery window. The verification is consumed.
func (s *AuthService) ChangePassword(ctx context.Context, email, newPassword string) error {
	hash, err := hashValid(newPassword)
	if err != nil {
		return err
	}
	if !s.takeVerified(email) {
		return apperr.Unauthorizedf(msgCodeNotVerified)
	}
	return s.creds.ChangePassword(ctx, email, hash)
}

func (s *AuthService) takeVerified(email string) bool {
	key := strings.ToLower(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.verified[key]
	delete(s.verified, key)
	return ok && s.now().Before(until)
}

// checkPassword loads the account and verifies its current password.
func (s *AuthService) checkPassword(ctx context.Context, id int64, password string) error {
	user, err := s.creds.CredentialsByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFoundf(msgUserNotFound)
	}
	if utils.ComparePassword(user.PasswordHash, password) != nil {
		return apperr.Unauthorizedf(msgWrongPassword)
	}
	return nil
}

func (s *AuthService) DeleteAccount(ctx context.Context, id int64, password string) error {
	if err := s.checkPassword(ctx, id, password); err != nil {
		return err
	}
	return s.creds.DeleteAccount(ctx, id)
}

func (s *AuthService) ResetPassword(ctx context.Context, id int64, current, next string) error {
	if err := s.checkPassword(ctx, id, current); err != nil {
		return err
	}
	hash, err := hashValid(next)
	if err != nil {
		return err
	}
	return s.creds.UpdatePassword(ctx, id, hash)
}

func hashValid(password string) (string, error) {
	if !utils.ValidPassword(password) {
		return "", apperr.Validationf(msgWeakPassword)
	}
	return utils.HashPassword(password)
}
