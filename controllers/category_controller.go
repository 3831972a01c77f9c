package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"

	"github.com/gin-gonic/gin"
)

const (
	msgCategoryMissing = "No se encontró la categoría con la identificación proporcionada"
	msgCategoryTaken   = "Ya existe una categoría con la descripción proporcionada"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(repo *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

type CategoryReq struct {
	Description string `json:"descripcion" binding:"required"`
	Active      *bool  `json:"estado" binding:"required"`
	Kind        string `json:"tipoCategoria" binding:"required"`
}

func (r *CategoryReq) entity() *entity.Category {
	return &entity.Category{Description: r.Description, Active: *r.Active, Kind: r.Kind}
}

// GET /api/categorias
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(cats) == 0 {
		resp.NotFound(c, "No se encontraron categorías de productos")
		return
	}
	resp.OK(c, cats)
}

// POST /api/categorias/registrar
func (ctl *CategoryController) Register(c *gin.Context) {
	var req CategoryReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar una categoría") {
		return
	}
	ctx := c.Request.Context()
	taken, err := ctl.Repo.ExistsDescription(ctx, req.Description)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if taken {
		resp.BadRequest(c, msgCategoryTaken)
		return
	}
	if err := ctl.Repo.Create(ctx, req.entity()); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Categoría registrada correctamente")
}

// PUT /api/categorias/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CategoryReq
	if !bindJSON(c, &req, "No se pudo actualizar la categoría seleccionada") {
		return
	}
	ctx := c.Request.Context()
	found, err := ctl.Repo.ExistsID(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !found {
		resp.NotFound(c, msgCategoryMissing)
		return
	}
	if err := ctl.Repo.Update(ctx, id, req.entity()); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Categoría actualizada correctamente")
}

// DELETE /api/categorias/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
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
		resp.NotFound(c, msgCategoryMissing)
		return
	}
	inUse, err := ctl.Repo.InUse(ctx, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if inUse {
		resp.BadRequest(c, "No se puede eliminar una categoría que está asociada a productos. Elimine los productos asociados primero")
		return
	}
	if err := ctl.Repo.Delete(ctx, id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Categoría eliminada correctamente")
}
