package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

type OrderStatusReq struct {
	Status string `json:"estado" binding:"required"`
}

// POST /api/ordenes/registrar
func (ctl *OrderController) Register(c *gin.Context) {
	var req services.PlaceOrderReq
	if !bindJSON(c, &req, "Los datos de la orden no son válidos") {
		return
	}
	res, err := ctl.Service.PlaceOrder(c.Request.Context(), &req)
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

// GET /api/ordenes
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(orders) == 0 {
		resp.NotFound(c, "No hay ordenes registradas")
		return
	}
	resp.OK(c, orders)
}

// PUT /api/ordenes/:idOrden/estado
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "idOrden")
	if !ok {
		return
	}
	var req OrderStatusReq
	if !bindJSON(c, &req, "El estado de la orden es requerido") {
		return
	}
	if err := ctl.Service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Estado de la orden actualizado")
}
