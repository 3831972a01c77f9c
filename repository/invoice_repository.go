package repository

import (
	"context"

	"github.com/Techkepper/PoskepperApi/entity"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// FindPending returns the customer's unpaid invoice, or nil.
func (r *InvoiceRepository) FindPending(ctx context.Context, clientID int64) (*entity.Invoice, error) {
	return one[entity.Invoice](ctx, r.DB, "sp_ObtenerFacturaPendiente", clientID)
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return one[entity.Invoice](ctx, r.DB, "sp_ObtenerFacturaPorId", id)
}

func (r *InvoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := call(ctx, r.DB, &out, "sp_ObtenerDetallesFactura"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) (int64, error) {
	return insertedID(ctx, r.DB, "sp_CrearFactura", inv.OrderID, inv.Date, inv.Total, inv.UserID)
}

// Refresh recomputes the pending invoice's total from its order.
func (r *InvoiceRepository) Refresh(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_ActualizarFactura", id)
}

// MarkPaid closes the invoice, which frees its table.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id int64) error {
	return exec(ctx, r.DB, "sp_ActualizarEstadoFactura", id)
}

func (r *InvoiceRepository) RegisterSender(ctx context.Context, p *entity.InvoiceParty) error {
	return exec(ctx, r.DB, "sp_RegistrarSender", p.InvoiceID, p.Name, p.Email, p.Address,
		p.City, p.ZipCode, p.Country, p.Phone, p.CustomInputs)
}

func (r *InvoiceRepository) RegisterReceiver(ctx context.Context, p *entity.InvoiceParty) error {
	return exec(ctx, r.DB, "sp_RegistrarReceiver", p.InvoiceID, p.Name, p.Email, p.Address,
		p.City, p.ZipCode, p.Country, p.Phone, p.CustomInputs)
}

func (r *InvoiceRepository) RegisterDetails(ctx context.Context, d *entity.InvoiceDetails) error {
	return exec(ctx, r.DB, "sp_RegistrarDetails", d.InvoiceID, d.InvoiceNumber, d.InvoiceDate,
		d.InvoiceLogo, d.DueDate, d.Currency, d.Language, d.TaxDetails, d.DiscountDetails,
		d.ShippingDetails, d.PaymentInformation, d.AdditionalNotes, d.PaymentTerms,
		d.TotalAmountInWords, d.PDFTemplate, d.SubTotal, d.TotalAmount, d.Signature, d.UpdatedAt)
}
