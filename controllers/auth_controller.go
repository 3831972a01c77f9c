package controllers

import (
	"net/http"
	"time"

	"github.com/Techkepper/PoskepperApi/middlewares"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/services"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"nombreUsuario" binding:"required"`
	Password string `json:"contrasenna" binding:"required"`
}

type RecoveryRequest struct {
	Email string `json:"correo" binding:"required"`
}

type VerifyTokenRequest struct {
	Email string `json:"correo" binding:"required"`
	Token string `json:"token" binding:"required"`
}

type ChangePasswordRequest struct {
	Email       string `json:"correo" binding:"required"`
	NewPassword string `json:"nuevaContrasenna" binding:"required"`
}

type DeleteAccountRequest struct {
	ID       int64  `json:"id" binding:"required"`
	Password string `json:"contrasenna" binding:"required"`
}

type ResetPasswordRequest struct {
	ID          int64  `json:"id" binding:"required"`
	Password    string `json:"contrasenna" binding:"required"`
	NewPassword string `json:"nuevaContrasenna" binding:"required"`
}

type AuthController struct {
	Service   *services.AuthService
	CookieTTL time.Duration
}

func NewAuthController(s *services.AuthService, cookieTTL time.Duration) *AuthController {
	return &AuthController{Service: s, CookieTTL: cookieTTL}
}

// POST /api/auth/iniciar-sesion
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req, "Nombre de usuario y contraseña son requeridos") {
		return
	}
	token, user, err := a.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middlewares.TokenCookie, token, int(a.CookieTTL.Seconds()), "/", "", true, true)
	resp.OK(c, user)
}

// GET /api/auth/mi-perfil
func (a *AuthController) Profile(c *gin.Context) {
	user, err := a.Service.Profile(c.Request.Context(), utils.CurrentUsername(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /api/auth/cerrar-sesion
func (a *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", true, true)
	resp.Message(c, http.StatusOK, "Sesión cerrada")
}

// POST /api/auth/solicitar-token-recuperacion
func (a *AuthController) RequestRecovery(c *gin.Context) {
	var req RecoveryRequest
	if !bindJSON(c, &req, "El correo es requerido para recuperar la contraseña") {
		return
	}
	if err := a.Service.RequestRecovery(c.Request.Context(), req.Email); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Código de 4 dígitos enviado al correo")
}

// POST /api/auth/verificar-token
func (a *AuthController) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if !bindJSON(c, &req, "Correo y token son requeridos") {
		return
	}
	if err := a.Service.VerifyRecovery(c.Request.Context(), req.Email, req.Token); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Código válido")
}

// POST /api/auth/cambiar-contrasenna
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req, "Correo y nueva contraseña son requeridos") {
		return
	}
	if err := a.Service.ChangePassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Contraseña cambiada exitosamente")
}

// POST /api/auth/eliminar-mi-cuenta
func (a *AuthController) DeleteAccount(c *gin.Context) {
	var req DeleteAccountRequest
	if !bindJSON(c, &req, "La contraseña es requerida para eliminar la cuenta") {
		return
	}
	if req.ID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "Solo puede eliminar su propia cuenta")
		return
	}
	if err := a.Service.DeleteAccount(c.Request.Context(), req.ID, req.Password); err != nil {
		resp.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middlewares.TokenCookie, "", -1, "/", "", true, true)
	resp.Message(c, http.StatusOK, "Cuenta eliminada exitosamente")
}

// POST /api/auth/restablecer-mi-contrasenna
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req, "Contraseña actual y nueva contraseña son requeridas") {
		return
	}
	if req.ID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "Solo puede cambiar su propia contraseña")
		return
	}
	if err := a.Service.ResetPassword(c.Request.Context(), req.ID, req.Password, req.NewPassword); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Contraseña actualizada exitosamente")
}
