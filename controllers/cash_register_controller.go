package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgRegisterMissing = "No se encontró la caja con la identificación proporcionada"
	msgRegisterTaken   = "Ya existe una caja con el nombre proporcionado"
	msgOpeningAmount   = "El monto de apertura debe ser un número positivo sin decimales"
	msgClosingAmount   = "El monto de cierre debe ser un número positivo sin decimales"
	msgInitialAmount   = "El monto inicial debe ser un número positivo sin decimales"
)

type CashRegisterController struct {
	Repo *repository.CashRegisterRepository
}

func NewCashRegisterController(repo *repository.CashRegisterRepository) *CashRegisterController {
	return &CashRegisterController{Repo: repo}
}

type CashRegisterReq struct {
	Name          string          `json:"nombre" binding:"required"`
	OpeningAmount decimal.Decimal `json:"montoApertura"`
	ClosingAmount decimal.Decimal `json:"montoCierre"`
	Assigned      bool            `json:"estaAsignada"`
}

func (r *CashRegisterReq) register() (*entity.CashRegister, string) {
	if !utils.NonNegativeInteger(r.OpeningAmount) {
		return nil, msgOpeningAmount
	}
	if !utils.NonNegativeInteger(r.ClosingAmount) {
		return nil, msgClosingAmount
	}
	return &entity.CashRegister{
		Name:          r.Name,
		OpeningAmount: r.OpeningAmount,
		ClosingAmount: r.ClosingAmount,
		Assigned:      r.Assigned,
	}, ""
}

type AssignRegisterReq struct {
	UserID  int64           `json:"idUsuario" binding:"required"`
	ID      int64           `json:"idCaja" binding:"required"`
	Initial decimal.Decimal `json:"montoInicial"`
}

type RegisterStateReq struct {
	Assigned *bool `json:"estaAsignada" binding:"required"`
}

// POST /api/cajas/registrar
func (ctl *CashRegisterController) Register(c *gin.Context) {
	var req CashRegisterReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar una caja") {
		return
	}
	reg, msg := req.register()
	if msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	ctx := c.Request.Context()
	taken, err := ctl.Repo.ExistsName(ctx, req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgRegisterTaken)
		return
	}
	if err := ctl.Repo.Create(ctx, reg); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Caja registrada correctamente")
}

// GET /api/cajas
func (ctl *CashRegisterController) List(c *gin.Context) {
	regs, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(regs) == 0 {
		resp.NotFound(c, "No se encontraron cajas")
		return
	}
	resp.OK(c, regs)
}

// GET /api/cajas/disponibles
func (ctl *CashRegisterController) Available(c *gin.Context) {
	regs, err := ctl.Repo.Available(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(regs) == 0 {
		resp.NotFound(c, "No se encontraron cajas disponibles")
		return
	}
	resp.OK(c, regs)
}

// GET /api/cajas/:idUsuario
func (ctl *CashRegisterController) ByUser(c *gin.Context) {
	userID, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}
	regs, err := ctl.Repo.ByUser(c.Request.Context(), userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(regs) == 0 {
		resp.NotFound(c, "No se encontró la caja con usuario definido")
		return
	}
	resp.OK(c, regs)
}

// GET /api/cajas/:idUsuario/tieneCaja
func (ctl *CashRegisterController) UserHasRegister(c *gin.Context) {
	userID, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}
	has, err := ctl.Repo.UserHasRegister(c.Request.Context(), userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !has {
		resp.NotFound(c, "El usuario no tiene una caja asignada")
		return
	}
	resp.Message(c, http.StatusOK, "El usuario tiene una caja asignada")
}

// PUT /api/cajas/:id
func (ctl *CashRegisterController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CashRegisterReq
	if !bindJSON(c, &req, "No se pudo actualizar la caja seleccionada") {
		return
	}
	reg, msg := req.register()
	if msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgRegisterMissing)
		return
	}
	if err := ctl.Repo.Update(ctx, id, reg); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Caja actualizada correctamente")
}

// DELETE /api/cajas/:id
func (ctl *CashRegisterController) Delete(c *gin.Context) {
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
		resp.NotFound(c, msgRegisterMissing)
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Caja eliminada correctamente")
}

// POST /api/cajas/asignar
func (ctl *CashRegisterController) Assign(c *gin.Context) {
	var req AssignRegisterReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para asignar una caja") {
		return
	}
	if !utils.NonNegativeInteger(req.Initial) {
		resp.BadRequest(c, msgInitialAmount)
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, req.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgRegisterMissing)
		return
	}
	if err := ctl.Repo.Assign(ctx, req.ID, req.UserID, req.Initial); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Caja asignada correctamente")
}

// PUT /api/cajas/:idCaja/estado
func (ctl *CashRegisterController) SetState(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req RegisterStateReq
	if !bindJSON(c, &req, "Faltan datos en la solicitud") {
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.BadRequest(c, "Error al cambiar el estado de la caja")
		return
	}
	if err := ctl.Repo.SetAssigned(ctx, id, *req.Assigned); err != nil {
		resp.ServerError(c, err)
		return
	}
	msg := "La caja ha sido cerrada"
	if *req.Assigned {
		msg = "Caja asignada correctamente"
	}
	resp.Message(c, http.StatusOK, msg)
}
