package controllers

import (
	"net/http"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/report"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/services"

	"github.com/gin-gonic/gin"
)

type StockCountController struct {
	Service *services.StockCountService
	Reports *services.ReportService
}

func NewStockCountController(s *services.StockCountService, reports *services.ReportService) *StockCountController {
	return &StockCountController{Service: s, Reports: reports}
}

type StockCountReq struct {
	CountedAt time.Time `json:"fechaToma" binding:"required"`
	Reason    string    `json:"motivo" binding:"required"`
	UserID    int64     `json:"idUsuario" binding:"required"`
}

type CountedProductReq struct {
	Name     string `json:"nombre" binding:"required"`
	Quantity int    `json:"cantidad"`
}

// POST /api/toma/registrar
func (ctl *StockCountController) Register(c *gin.Context) {
	var req StockCountReq
	if !bindJSON(c, &req, "Todos los campos son requeridos para registrar la toma física") {
		return
	}
	err := ctl.Service.Register(c.Request.Context(), &entity.StockCount{
		CountedAt: req.CountedAt,
		Reason:    req.Reason,
		UserID:    req.UserID,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Toma física registrada correctamente")
}

// POST /api/toma/agregar-producto
func (ctl *StockCountController) AddProduct(c *gin.Context) {
	var req CountedProductReq
	if !bindJSON(c, &req, "El nombre y la cantidad del producto son requeridos") {
		return
	}
	if err := ctl.Service.AddProduct(c.Request.Context(), req.Name, req.Quantity); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Producto agregado correctamente a la toma física")
}

// POST /api/toma/subir-excel
func (ctl *StockCountController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "No se ha subido ningún archivo")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	res, err := ctl.Service.Import(c.Request.Context(), f)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if res.Failed() {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Summary(), "detalle": res})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Productos agregados correctamente desde el archivo Excel",
		"detalle": res,
	})
}

// GET /api/toma/descargar-excel
func (ctl *StockCountController) Template(c *gin.Context) {
	f, err := report.StockCountTemplate()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	sendWorkbook(c, "plantilla-toma-fisica.xlsx", f)
}

// GET /api/toma/reporte-datos
// Responds with an XLSX attachment, not a PDF.
func (ctl *StockCountController) DifferencesReport(c *gin.Context) {
	f, err := ctl.Reports.Differences(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	sendWorkbook(c, "reporte-diferencias.xlsx", f)
}

// GET /api/toma/reporte-estado
// Responds with an XLSX attachment, not a PDF.
func (ctl *StockCountController) SnapshotReport(c *gin.Context) {
	f, err := ctl.Reports.Snapshot(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	sendWorkbook(c, "reporte-inventario.xlsx", f)
}
