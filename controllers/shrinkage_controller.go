package controllers

import (
	"net/http"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"

	"github.com/gin-gonic/gin"
)

type ShrinkageController struct {
	Repo *repository.ShrinkageRepository
}

func NewShrinkageController(repo *repository.ShrinkageRepository) *ShrinkageController {
	return &ShrinkageController{Repo: repo}
}

type ShrinkageReq struct {
	ProductID int64     `json:"idProducto" binding:"required"`
	Quantity  int       `json:"cantidad" binding:"required,gt=0"`
	Date      time.Time `json:"fecha" binding:"required"`
	Comment   string    `json:"comentario"`
	Status    string    `json:"estado" binding:"required"`
}

// POST /api/mermas/registrar
func (ctl *ShrinkageController) Register(c *gin.Context) {
	var req ShrinkageReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar una merma") {
		return
	}
	err := ctl.Repo.Create(c.Request.Context(), &entity.Shrinkage{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Date:      req.Date,
		Comment:   req.Comment,
		Status:    req.Status,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Merma registrada correctamente")
}

// GET /api/mermas
func (ctl *ShrinkageController) List(c *gin.Context) {
	rows, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(rows) == 0 {
		resp.NotFound(c, "No se encontraron mermas")
		return
	}
	resp.OK(c, rows)
}
