package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/pkg/events"
	"github.com/Techkepper/PoskepperApi/pkg/metrics"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	msgOrderCreated     = "Orden registrada correctamente"
	msgDetailAppended   = "Detalle añadido a la orden existente correctamente"
	msgTableMismatch    = "La mesa no coincide con el usuario. La mesa correcta es: %s"
	msgTableOccupied    = "La mesa ya está ocupada por otro cliente. Por favor escoja otra mesa o la correspondiente"
	msgMissingOrder     = "No se encontró una orden para la factura pendiente. Verifique los datos e intente nuevamente."
	msgAppendFailed     = "Error al agregar el detalle a la orden"
	msgCreateFailed     = "Error al registrar la orden"
	msgStatusFailed     = "Error al cambiar el estado de la orden"
	msgStatusRequired   = "El estado de la orden es requerido"
	msgOrderFieldsReq   = "idCliente, idMesa e idUsuario son requeridos"
	msgOrderItemsReq    = "La orden debe tener al menos un producto"
	msgOrderItemInvalid = "Cada producto requiere idProducto, una cantidad mayor a 0 y un precio unitario no negativo"
)

// Collaborators of the order flow. The repositories satisfy them directly.
type PendingInvoiceFinder interface {
	FindPending(ctx context.Context, clientID int64) (*entity.Invoice, error)
}

type OrderStore interface {
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Create(ctx context.Context, o *entity.Order) (int64, error)
	AppendDetails(ctx context.Context, orderID int64, items []entity.OrderItem) (bool, error)
	GetDetails(ctx context.Context, orderID int64) ([]entity.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (bool, error)
}

type OccupiedTableFinder interface {
	FindOccupied(ctx context.Context, tableID int64) (*entity.Table, error)
}

// Publisher delivers an event to connected clients. It never fails the caller.
type Publisher interface {
	Publish(event string, payload any)
}

// ----- DTOs from Controller -----
type OrderItemIn struct {
	ProductID int64            `json:"idProducto"`
	Quantity  int              `json:"cantidad"`
	Comment   string           `json:"comentario"`
	UnitPrice decimal.Decimal  `json:"precioUnitario"`
	Total     *decimal.Decimal `json:"total"`
}

type PlaceOrderReq struct {
	ClientID  int64         `json:"idCliente"`
	TableID   int64         `json:"idMesa"`
	UserID    int64         `json:"idUsuario"`
	Comment   string        `json:"comentario"`
	Status    string        `json:"estado"`
	OrderedAt *time.Time    `json:"fechaOrden"`
	Items     []OrderItemIn `json:"productos"`
}

type PlaceOrderRes struct {
	Message string `json:"mensaje"`
	OrderID int64  `json:"idOrden"`
	Created bool   `json:"-"`
}

type OrderService struct {
	Invoices  PendingInvoiceFinder
	Orders    OrderStore
	Tables    OccupiedTableFinder
	Publisher Publisher
	Log       logrus.FieldLogger

	now func() time.Time
}

func NewOrderService(invoices PendingInvoiceFinder, orders OrderStore, tables OccupiedTableFinder, pub Publisher, log logrus.FieldLogger) *OrderService {
	return &OrderService{Invoices: invoices, Orders: orders, Tables: tables, Publisher: pub, Log: log, now: time.Now}
}

// ----- Validate -----
func (req *PlaceOrderReq) lineItems() ([]entity.OrderItem, error) {
	if req.ClientID <= 0 || req.TableID <= 0 || req.UserID <= 0 {
		return nil, apperr.Validationf(msgOrderFieldsReq)
	}
	if len(req.Items) == 0 {
		return nil, apperr.Validationf(msgOrderItemsReq)
	}
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, apperr.Validationf(msgOrderItemInvalid)
		}
		total := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if it.Total != nil {
			total = *it.Total
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Comment:   it.Comment,
			UnitPrice: it.UnitPrice,
			Total:     total,
		})
	}
	return items, nil
}

// PlaceOrder either extends the customer's open tab or opens a new one on a
// free table. The two lookups are independent reads; two concurrent requests
// for the same free table can both pass the occupancy check.
func (s *OrderService) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	items, err := req.lineItems()
	if err != nil {
		metrics.RecordPlacement(metrics.OutcomeInvalid)
		return nil, err
	}

	pending, err := s.Invoices.FindPending(ctx, req.ClientID)
	if err != nil {
		return nil, s.internal(err, "find pending invoice")
	}
	occupied, err := s.Tables.FindOccupied(ctx, req.TableID)
	if err != nil {
		return nil, s.internal(err, "find occupied table")
	}

	if pending != nil {
		return s.appendToOpenTab(ctx, pending, req.TableID, items)
	}
	if occupied != nil {
		metrics.RecordPlacement(metrics.OutcomeTableOccupied)
		return nil, apperr.New(apperr.TableOccupied, msgTableOccupied)
	}
	return s.openTab(ctx, req, items)
}

func (s *OrderService) appendToOpenTab(ctx context.Context, pending *entity.Invoice, tableID int64, items []entity.OrderItem) (*PlaceOrderRes, error) {
	order, err := s.Orders.FindByID(ctx, pending.OrderID)
	if err != nil {
		return nil, s.internal(err, "load pending order")
	}
	if order == nil {
		metrics.RecordPlacement(metrics.OutcomeMissingOrder)
		return nil, apperr.New(apperr.InconsistentState, msgMissingOrder)
	}
	if order.TableID != tableID {
		metrics.RecordPlacement(metrics.OutcomeTableMismatch)
		name := order.TableName
		if name == "" {
			name = fmt.Sprint(order.TableID)
		}
		return nil, apperr.New(apperr.TableMismatch, fmt.Sprintf(msgTableMismatch, name))
	}

	added, err := s.Orders.AppendDetails(ctx, order.ID, items)
	if err != nil {
		return nil, s.internalMsg(err, msgAppendFailed, "append details")
	}
	if !added {
		return nil, s.internalMsg(nil, msgAppendFailed, "append details")
	}

	details, err := s.Orders.GetDetails(ctx, order.ID)
	if err != nil {
		return nil, s.internal(err, "reload details")
	}
	if len(details) > 0 {
		s.Publisher.Publish(events.NewOrder, details)
		s.Publisher.Publish(events.OrderUpdated, map[string]any{"idOrden": order.ID, "detalles": details})
	}

	metrics.RecordPlacement(metrics.OutcomeAppended)
	return &PlaceOrderRes{Message: msgDetailAppended, OrderID: order.ID}, nil
}

func (s *OrderService) openTab(ctx context.Context, req *PlaceOrderReq, items []entity.OrderItem) (*PlaceOrderRes, error) {
	status := req.Status
	if status == "" {
		status = entity.OrderPending
	}
	orderedAt := s.now()
	if req.OrderedAt != nil {
		orderedAt = *req.OrderedAt
	}

	id, err := s.Orders.Create(ctx, &entity.Order{
		OrderedAt: orderedAt,
		UserID:    req.UserID,
		ClientID:  req.ClientID,
		Comment:   req.Comment,
		Status:    status,
		TableID:   req.TableID,
		Items:     items,
	})
	if err != nil {
		return nil, s.internalMsg(err, msgCreateFailed, "create order")
	}
	if id == 0 {
		return nil, s.internalMsg(nil, msgCreateFailed, "create order")
	}

	created, err := s.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, s.internal(err, "load created order")
	}
	if created == nil {
		s.Log.WithField("idOrden", id).Warn("created order not found, nuevaOrden not published")
	} else {
		s.Publisher.Publish(events.NewOrder, created)
	}

	metrics.RecordPlacement(metrics.OutcomeCreated)
	return &PlaceOrderRes{Message: msgOrderCreated, OrderID: id, Created: true}, nil
}

func (s *OrderService) internal(err error, step string) error {
	return s.internalMsg(err, "", step)
}

func (s *OrderService) internalMsg(err error, msg, step string) error {
	metrics.RecordPlacement(metrics.OutcomeInternalFailed)
	if err == nil {
		err = fmt.Errorf("%s: no rows affected", step)
	}
	s.Log.WithError(err).WithField("step", step).Error("place order")
	return apperr.Wrap(apperr.Internal, msg, err)
}

// ----- Queries -----
func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.Orders.List(ctx)
}

// UpdateStatus changes the order's status and tells connected screens.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if strings.TrimSpace(status) == "" {
		return apperr.Validationf(msgStatusRequired)
	}
	ok, err := s.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Validationf(msgStatusFailed)
	}
	s.Publisher.Publish(events.OrderStatusChanged, map[string]any{"idOrden": orderID, "estado": status})
	return nil
}
