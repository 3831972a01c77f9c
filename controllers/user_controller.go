package controllers

import (
	"net/http"
	"strings"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/services"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgUserFieldsReq  = "Todos los campos son requeridos para registrar un usuario"
	msgUsernameTaken  = "El nombre de usuario ya está en uso"
	msgUserEmailTaken = "El correo electrónico ya está en uso"
	msgEmailFormat    = "El correo electrónico debe tener el siguiente formato: nombre@ejemplo.com"
	msgCommission     = "La comisión debe ser un número positivo sin decimales"
	msgPasswordRule   = "La contraseña debe tener al menos 4 letras minúsculas y 4 números"
	msgUserMissing    = "No se encontró el usuario con el ID proporcionado"
	msgDatesReq       = "Se requieren las fechas de inicio y fin para la consulta"
)

type UserController struct {
	Repo    *repository.UserRepository
	Reports *services.ReportService
}

func NewUserController(repo *repository.UserRepository, reports *services.ReportService) *UserController {
	return &UserController{Repo: repo, Reports: reports}
}

type RegisterUserReq struct {
	Username   string           `json:"nombreUsuario" binding:"required"`
	Password   string           `json:"contrasenna" binding:"required"`
	Name       string           `json:"nombre" binding:"required"`
	LastName   string           `json:"apellidos" binding:"required"`
	RoleID     int64            `json:"idRol" binding:"required"`
	Comments   string           `json:"comentarios"`
	Email      string           `json:"correo" binding:"required"`
	Commission *decimal.Decimal `json:"comision"`
}

type UpdateUserReq struct {
	Username   *string          `json:"nombreUsuario"`
	Password   *string          `json:"contrasenna"`
	Name       *string          `json:"nombre"`
	LastName   *string          `json:"apellidos"`
	RoleID     *int64           `json:"idRol"`
	Comments   *string          `json:"comentarios"`
	Email      *string          `json:"correo"`
	Commission *decimal.Decimal `json:"comision"`
}

type DateRangeReq struct {
	From string `json:"fechaInicio" binding:"required"`
	To   string `json:"fechaFin" binding:"required"`
}

type CommissionReportReq struct {
	UserID int64  `json:"id" binding:"required"`
	From   string `json:"fechaInicio" binding:"required"`
	To     string `json:"fechaFin" binding:"required"`
}

// POST /api/usuarios/registrar
func (ctl *UserController) Register(c *gin.Context) {
	var req RegisterUserReq
	if !bindJSON(c, &req, msgUserFieldsReq) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if !utils.ValidEmail(req.Email) {
		resp.BadRequest(c, msgEmailFormat)
		return
	}
	if !utils.ValidPassword(req.Password) {
		resp.BadRequest(c, msgPasswordRule)
		return
	}
	commission := decimal.Zero
	if req.Commission != nil {
		if !utils.NonNegativeInteger(*req.Commission) {
			resp.BadRequest(c, msgCommission)
			return
		}
		commission = *req.Commission
	}

	ctx := c.Request.Context()
	taken, err := ctl.Repo.ExistsUsername(ctx, req.Username)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgUsernameTaken)
		return
	}
	taken, err = ctl.Repo.ExistsEmail(ctx, req.Email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgUserEmailTaken)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		LastName:     req.LastName,
		RoleID:       req.RoleID,
		Comments:     req.Comments,
		Email:        req.Email,
		Commission:   commission,
	}
	if err := ctl.Repo.Create(ctx, user); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Usuario registrado correctamente")
}

// GET /api/usuarios
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(users) == 0 {
		resp.NotFound(c, "No se encontraron usuarios")
		return
	}
	resp.OK(c, users)
}

// GET /api/usuarios/roles
func (ctl *UserController) Roles(c *gin.Context) {
	roles, err := ctl.Repo.Roles(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(roles) == 0 {
		resp.NotFound(c, "No se encontraron roles de usuario")
		return
	}
	resp.OK(c, roles)
}

// GET /api/usuarios/:id
func (ctl *UserController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if user == nil {
		resp.NotFound(c, msgUserMissing)
		return
	}
	resp.OK(c, user)
}

// PUT /api/usuarios/:id
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserReq
	if !bindJSON(c, &req, "No se pudo actualizar el usuario") {
		return
	}
	ctx := c.Request.Context()

	current, err := ctl.Repo.FindByID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if current == nil {
		resp.NotFound(c, msgUserMissing)
		return
	}

	upd := entity.UserUpdate{
		Name:     req.Name,
		LastName: req.LastName,
		RoleID:   req.RoleID,
		Comments: req.Comments,
	}
	if req.Commission != nil {
		if !utils.NonNegativeInteger(*req.Commission) {
			resp.BadRequest(c, msgCommission)
			return
		}
		upd.Commission = req.Commission
	}
	if req.Email != nil && *req.Email != current.Email {
		if !utils.ValidEmail(*req.Email) {
			resp.BadRequest(c, msgEmailFormat)
			return
		}
		taken, err := ctl.Repo.ExistsEmail(ctx, *req.Email)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if taken {
			resp.BadRequest(c, msgUserEmailTaken)
			return
		}
		upd.Email = req.Email
	}
	if req.Username != nil && *req.Username != current.Username {
		taken, err := ctl.Repo.ExistsUsername(ctx, *req.Username)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if taken {
			resp.BadRequest(c, msgUsernameTaken)
			return
		}
		upd.Username = req.Username
	}
	if req.Password != nil && *req.Password != "" {
		if !utils.ValidPassword(*req.Password) {
			resp.BadRequest(c, msgPasswordRule)
			return
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		upd.PasswordHash = &hash
	}

	if err := ctl.Repo.Update(ctx, id, upd); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Usuario actualizado correctamente")
}

// DELETE /api/usuarios/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgUserMissing)
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Usuario eliminado correctamente")
}

// POST /api/usuarios/comisiones
func (ctl *UserController) Commissions(c *gin.Context) {
	var req DateRangeReq
	if !bindJSON(c, &req, msgDatesReq) {
		return
	}
	rows, err := ctl.Repo.Commissions(c.Request.Context(), req.From, req.To)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.NotFound(c, "No se encontraron comisiones")
		return
	}
	resp.OK(c, rows)
}

// POST /api/usuarios/reporte/comision
// Responds with an XLSX attachment, not a PDF.
func (ctl *UserController) CommissionReport(c *gin.Context) {
	var req CommissionReportReq
	if !bindJSON(c, &req, msgDatesReq) {
		return
	}
	f, err := ctl.Reports.Commissions(c.Request.Context(), req.UserID, req.From, req.To)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	sendWorkbook(c, "reporte-comisiones.xlsx", f)
}

// GET /api/usuarios/meseros/ordenes
func (ctl *UserController) WaitersWithOrders(c *gin.Context) {
	rows, err := ctl.Repo.WaitersWithOrders(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.NotFound(c, "No se encontraron meseros")
		return
	}
	resp.OK(c, rows)
}
