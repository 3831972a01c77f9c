package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoicePending = 0
	InvoicePaid    = 1
)

type Invoice struct {
	ID         int64           `gorm:"column:idFactura" json:"idFactura"`
	OrderID    int64           `gorm:"column:idOrden" json:"idOrden"`
	UserID     int64           `gorm:"column:idUsuario" json:"idUsuario"`
	ClientID   int64           `gorm:"column:idCliente" json:"idCliente,omitempty"`
	Date       time.Time       `gorm:"column:fecha" json:"fecha"`
	Total      decimal.Decimal `gorm:"column:total" json:"total"`
	Status     int             `gorm:"column:estadoFactura" json:"estadoFactura"`
	ClientName string          `gorm:"column:nombreCliente" json:"nombreCliente,omitempty"`
	TableName  string          `gorm:"column:nombreMesa" json:"nombreMesa,omitempty"`
}

// InvoiceParty is the sender or receiver block printed on an invoice.
type InvoiceParty struct {
	InvoiceID    int64  `json:"idFactura" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	CustomInputs string `json:"customInputs"`
}

// InvoiceDetails holds the presentation settings of an invoice document.
type InvoiceDetails struct {
	InvoiceID          int64           `json:"idFactura" binding:"required"`
	InvoiceNumber      string          `json:"invoiceNumber" binding:"required"`
	InvoiceDate        string          `json:"invoiceDate"`
	InvoiceLogo        string          `json:"invoiceLogo"`
	DueDate            string          `json:"dueDate"`
	Currency           string          `json:"currency"`
	Language           string          `json:"language"`
	TaxDetails         string          `json:"taxDetails"`
	DiscountDetails    string          `json:"discountDetails"`
	ShippingDetails    string          `json:"shippingDetails"`
	PaymentInformation string          `json:"paymentInformation"`
	AdditionalNotes    string          `json:"additionalNotes"`
	PaymentTerms       string          `json:"paymentTerms"`
	TotalAmountInWords string          `json:"totalAmountInWords"`
	PDFTemplate        int             `json:"pdfTemplate"`
	SubTotal           decimal.Decimal `json:"subTotal"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Signature          string          `json:"signature"`
	UpdatedAt          string          `json:"updatedAt"`
}
