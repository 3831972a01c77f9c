package services

import (
	"context"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/pkg/events"

	"github.com/shopspring/decimal"
)

const msgInvoiceTotalReq = "El total de la factura es requerido"

type InvoiceStore interface {
	FindPending(ctx context.Context, clientID int64) (*entity.Invoice, error)
	FindByID(ctx context.Context, id int64) (*entity.Invoice, error)
	Create(ctx context.Context, inv *entity.Invoice) (int64, error)
	Refresh(ctx context.Context, id int64) error
	MarkPaid(ctx context.Context, id int64) error
}

type OrderFinder interface {
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)
}

type RegisterInvoiceReq struct {
	OrderID int64            `json:"idOrden" binding:"required"`
	Date    time.Time        `json:"fecha" binding:"required"`
	Total   *decimal.Decimal `json:"total" binding:"required"`
	UserID  int64            `json:"idUsuario" binding:"required"`
}

type RegisterInvoiceRes struct {
	Message   string `json:"mensaje"`
	InvoiceID int64  `json:"idFactura"`
	Created   bool   `json:"-"`
}

type InvoiceService struct {
	Invoices  InvoiceStore
	Orders    OrderFinder
	Publisher Publisher
}

func NewInvoiceService(invoices InvoiceStore, orders OrderFinder, pub Publisher) *InvoiceService {
	return &InvoiceService{Invoices: invoices, Orders: orders, Publisher: pub}
}

// Register bills an order. A customer keeps a single pending invoice, so when
// one already exists it is refreshed instead of a second one being created.
func (s *InvoiceService) Register(ctx context.Context, req *RegisterInvoiceReq) (*RegisterInvoiceRes, error) {
	if req.Total == nil {
		return nil, apperr.Validationf(msgInvoiceTotalReq)
	}
	if req.Total.IsNegative() {
		return nil, apperr.Validationf("El total no puede ser negativo")
	}
	order, err := s.Orders.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFoundf("Orden no encontrada")
	}

	pending, err := s.Invoices.FindPending(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		if err := s.Invoices.Refresh(ctx, pending.ID); err != nil {
			return nil, err
		}
		return &RegisterInvoiceRes{Message: "Factura pendiente actualizada correctamente", InvoiceID: pending.ID}, nil
	}

	id, err := s.Invoices.Create(ctx, &entity.Invoice{
		OrderID: req.OrderID,
		UserID:  req.UserID,
		Date:    req.Date,
		Total:   *req.Total,
	})
	if err != nil {
		return nil, err
	}
	return &RegisterInvoiceRes{Message: "Factura registrada correctamente", InvoiceID: id, Created: true}, nil
}

// MarkPaid closes the customer's tab; the table frees up with it.
func (s *InvoiceService) MarkPaid(ctx context.Context, id int64) error {
	inv, err := s.Invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return apperr.NotFoundf("Factura no encontrada")
	}
	if err := s.Invoices.MarkPaid(ctx, id); err != nil {
		return err
	}
	s.Publisher.Publish(events.InvoicePaid, map[string]any{"idFactura": id, "idOrden": inv.OrderID})
	return nil
}
