package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"

	"github.com/gin-gonic/gin"
)

const (
	msgTableMissing = "No se encontró la mesa con la identificación proporcionada"
	msgTableTaken   = "Ya existe una mesa con ese nombre"
)

type TableController struct {
	Repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{Repo: repo}
}

type TableReq struct {
	Name   string `json:"nombre" binding:"required"`
	Status string `json:"estado" binding:"required"`
}

// POST /api/mesas/registrar
func (ctl *TableController) Register(c *gin.Context) {
	var req TableReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar una mesa") {
		return
	}
	ctx := c.Request.Context()
	taken, err := ctl.Repo.ExistsName(ctx, req.Name)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgTableTaken)
		return
	}
	if err := ctl.Repo.Create(ctx, &entity.Table{Name: req.Name, Status: req.Status}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Mesa registrada correctamente")
}

// GET /api/mesas
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(tables) == 0 {
		resp.NotFound(c, "No se encontraron mesas")
		return
	}
	resp.OK(c, tables)
}

// PUT /api/mesas/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TableReq
	if !bindJSON(c, &req, "No se pudo actualizar la mesa seleccionada") {
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgTableMissing)
		return
	}
	if err := ctl.Repo.Update(ctx, id, &entity.Table{Name: req.Name, Status: req.Status}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Mesa actualizada correctamente")
}

// DELETE /api/mesas/:id
func (ctl *TableController) Delete(c *gin.Context) {
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
		resp.NotFound(c, msgTableMissing)
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Mesa eliminada correctamente")
}

// GET /api/mesas/:id/ocupada
func (ctl *TableController) Occupied(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	table, err := ctl.Repo.FindOccupied(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if table == nil {
		resp.NotFound(c, "La mesa no está ocupada")
		return
	}
	resp.OK(c, table)
}
