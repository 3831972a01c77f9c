package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/services"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgMovementFieldsReq = "Todos los campos son requeridos para registrar un movimiento"
	msgMovementItems     = "Movimientos debe ser un array con al menos un elemento"
	msgMovementQuantity  = "La cantidad de cada movimiento debe ser un número positivo sin decimales"
)

type MovementController struct {
	Repo    *repository.MovementRepository
	Reports *services.ReportService
}

func NewMovementController(repo *repository.MovementRepository, reports *services.ReportService) *MovementController {
	return &MovementController{Repo: repo, Reports: reports}
}

type MovementLineReq struct {
	ProductID int64           `json:"idProducto" binding:"required"`
	Quantity  decimal.Decimal `json:"cantidadMovimiento"`
	Comment   string          `json:"comentario"`
}

type MovementReq struct {
	Date   time.Time         `json:"fecha" binding:"required"`
	Reason string            `json:"motivo" binding:"required"`
	Kind   string            `json:"tipoMovimiento" binding:"required"`
	UserID int64             `json:"idUsuario" binding:"required"`
	Lines  []MovementLineReq `json:"movimientos"`
}

func (r *MovementReq) movement() (*entity.InventoryMovement, string) {
	if len(r.Lines) == 0 {
		return nil, msgMovementItems
	}
	m := &entity.InventoryMovement{
		Date:   r.Date,
		Reason: r.Reason,
		Kind:   r.Kind,
		UserID: r.UserID,
		Items:  make([]entity.MovementItem, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		if !utils.NonNegativeInteger(l.Quantity) {
			return nil, msgMovementQuantity
		}
		m.Items = append(m.Items, entity.MovementItem{
			ProductID: l.ProductID,
			Quantity:  int(l.Quantity.IntPart()),
			Comment:   l.Comment,
		})
	}
	return m, ""
}

// POST /api/movimientos/registrar
func (ctl *MovementController) Register(c *gin.Context) {
	var req MovementReq
	if !bindJSON(c, &req, msgMovementFieldsReq) {
		return
	}
	m, msg := req.movement()
	if msg != "" {
		resp.BadRequest(c, msg)
		return
	}
	id, err := ctl.Repo.Create(c.Request.Context(), m)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"mensaje":      "Movimiento de inventario registrado correctamente",
		"idMovimiento": id,
	})
}

// GET /api/movimientos
func (ctl *MovementController) List(c *gin.Context) {
	ms, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(ms) == 0 {
		resp.NotFound(c, "No se encontraron movimientos de inventario")
		return
	}
	resp.OK(c, ms)
}

// GET /api/movimientos/:id
func (ctl *MovementController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if m == nil {
		resp.NotFound(c, "Movimiento no encontrado")
		return
	}
	resp.OK(c, m)
}

// GET /api/movimientos/reporteMovimiento/:id
// Responds with an XLSX attachment, not a PDF.
func (ctl *MovementController) Report(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := ctl.Reports.Movement(c.Request.Context(), id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	sendWorkbook(c, "reporte-movimiento-"+strconv.FormatInt(id, 10)+".xlsx", f)
}
