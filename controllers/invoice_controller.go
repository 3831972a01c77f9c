package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/services"

	"github.com/gin-gonic/gin"
)

const msgInvoiceFieldsReq = "Todos los campos son requeridos para registrar una factura"

type InvoiceController struct {
	Service *services.InvoiceService
	Repo    *repository.InvoiceRepository
}

func NewInvoiceController(s *services.InvoiceService, repo *repository.InvoiceRepository) *InvoiceController {
	return &InvoiceController{Service: s, Repo: repo}
}

// POST /api/facturas/registrar
func (ctl *InvoiceController) Register(c *gin.Context) {
	var req services.RegisterInvoiceReq
	if !bindJSON(c, &req, msgInvoiceFieldsReq) {
		return
	}
	res, err := ctl.Service.Register(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if res.Created {
		resp.Created(c, res)
		return
	}
	resp.OK(c, res)
}

// GET /api/facturas
func (ctl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(invoices) == 0 {
		resp.NotFound(c, "No se encontraron facturas")
		return
	}
	resp.OK(c, invoices)
}

// GET /api/facturas/:id
func (ctl *InvoiceController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	inv, err := ctl.Repo.FindByID(c.Request.Context(), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if inv == nil {
		resp.NotFound(c, "Factura no encontrada")
		return
	}
	resp.OK(c, inv)
}

// PUT /api/facturas/:id
func (ctl *InvoiceController) MarkPaid(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.MarkPaid(c.Request.Context(), id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Factura pagada correctamente")
}

// POST /api/facturas/registrar/sender
func (ctl *InvoiceController) RegisterSender(c *gin.Context) {
	var p entity.InvoiceParty
	if !bindJSON(c, &p, "Los datos del emisor son requeridos") {
		return
	}
	if err := ctl.Repo.RegisterSender(c.Request.Context(), &p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Emisor registrado correctamente")
}

// POST /api/facturas/registrar/receiver
func (ctl *InvoiceController) RegisterReceiver(c *gin.Context) {
	var p entity.InvoiceParty
	if !bindJSON(c, &p, "Los datos del receptor son requeridos") {
		return
	}
	if err := ctl.Repo.RegisterReceiver(c.Request.Context(), &p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Receptor registrado correctamente")
}

// POST /api/facturas/registrar/details
func (ctl *InvoiceController) RegisterDetails(c *gin.Context) {
	var d entity.InvoiceDetails
	if !bindJSON(c, &d, "Los detalles de la factura son requeridos") {
		return
	}
	if err := ctl.Repo.RegisterDetails(c.Request.Context(), &d); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, http.StatusCreated, "Detalles de la factura registrados correctamente")
}
