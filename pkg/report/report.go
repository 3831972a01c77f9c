// Package report renders the inventory, movement and commission reports as
// XLSX workbooks.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Techkepper/PoskepperApi/entity"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	Sheet        = "Sheet1"
	notAvailable = "N/A"
	dateLayout   = "02/01/2006"
)

// FormatColones renders an amount as "1,234.00 colones".
func FormatColones(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac + " colones"
	if neg {
		return "-" + out
	}
	return out
}

type sheetWriter struct {
	f    *excelize.File
	row  int
	bold int
}

func newSheet(title string) (*sheetWriter, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	s := &sheetWriter{f: f, row: 1, bold: bold}
	if err := s.styled(title); err != nil {
		f.Close()
		return nil, err
	}
	s.row++
	return s, nil
}

func (s *sheetWriter) line(values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	if err := s.f.SetSheetRow(Sheet, cell, &values); err != nil {
		return err
	}
	s.row++
	return nil
}

func (s *sheetWriter) styled(values ...any) error {
	if err := s.line(values...); err != nil {
		return err
	}
	from, _ := excelize.CoordinatesToCellName(1, s.row-1)
	to, _ := excelize.CoordinatesToCellName(len(values), s.row-1)
	return s.f.SetCellStyle(Sheet, from, to, s.bold)
}

func (s *sheetWriter) done(cols int) (*excelize.File, error) {
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return nil, err
	}
	if err := s.f.SetColWidth(Sheet, "A", last, 20); err != nil {
		return nil, err
	}
	return s.f, nil
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Differences compares each product's counted quantity with the previous one.
func Differences(products []entity.Product) (*excelize.File, error) {
	s, err := newSheet("Reporte de Diferencias de Inventario")
	if err != nil {
		return nil, err
	}
	if err := s.styled("Producto", "Categoría", "Precio", "Cantidad Actual", "Cantidad Anterior", "Diferencia"); err != nil {
		return nil, err
	}
	for _, p := range products {
		prev, previous := 0, notAvailable
		if p.PrevQuantity != nil && *p.PrevQuantity != 0 {
			prev = *p.PrevQuantity
			previous = fmt.Sprint(prev)
		}
		if err := s.line(p.Name, orNA(p.CategoryName), FormatColones(p.Price), p.Quantity, previous, p.Quantity-prev); err != nil {
			return nil, err
		}
	}
	return s.done(6)
}

// Snapshot lists every stock product as of today.
func Snapshot(products []entity.Product) (*excelize.File, error) {
	s, err := newSheet("Reporte de Inventario")
	if err != nil {
		return nil, err
	}
	if err := s.styled("Producto", "Categoría", "Precio", "Cantidad Actual", "Comentario", "Descripción", "Fecha de Creación"); err != nil {
		return nil, err
	}
	for _, p := range products {
		created := notAvailable
		if p.CreatedAt != nil {
			created = p.CreatedAt.Format(dateLayout)
		}
		if err := s.line(p.Name, orNA(p.CategoryName), FormatColones(p.Price), p.Quantity,
			orNA(p.Comment), orNA(p.Description), created); err != nil {
			return nil, err
		}
	}
	return s.done(7)
}

// Movement renders one inventory movement with its lines.
func Movement(m *entity.InventoryMovement) (*excelize.File, error) {
	s, err := newSheet("Reporte de Movimiento de Inventario")
	if err != nil {
		return nil, err
	}
	header := [][2]string{
		{"Fecha", m.Date.Format(dateLayout)},
		{"Motivo", m.Reason},
		{"Tipo de Movimiento", orNA(m.KindName)},
		{"Usuario", orNA(m.UserName)},
	}
	for _, h := range header {
		if err := s.line(h[0], h[1]); err != nil {
			return nil, err
		}
	}
	s.row++
	if err := s.styled("Producto", "Cantidad Anterior", "Cantidad Movimiento", "Cantidad Actual", "Comentario"); err != nil {
		return nil, err
	}
	for _, it := range m.Items {
		if err := s.line(orNA(it.ProductName), it.Previous, it.Quantity, it.Current, orNA(it.Comment)); err != nil {
			return nil, err
		}
	}
	return s.done(5)
}

// Commissions renders a waiter's per-invoice commissions. rows must be
// non-empty; the header is taken from the first one.
func Commissions(rows []entity.Commission) (*excelize.File, error) {
	s, err := newSheet("Reporte de Comisiones")
	if err != nil {
		return nil, err
	}
	first := rows[0]
	header := [][2]string{
		{"Mesero", strings.TrimSpace(first.Name + " " + first.LastName)},
		{"Correo", first.Email},
		{"Comisión por Factura", first.Rate.String() + "%"},
		{"Periodo", first.PeriodStart.Format(dateLayout) + " - " + first.PeriodEnd.Format(dateLayout)},
	}
	for _, h := range header {
		if err := s.line(h[0], h[1]); err != nil {
			return nil, err
		}
	}
	s.row++
	if err := s.styled("Número de Factura", "Total", "Comisión"); err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, c := range rows {
		total = total.Add(c.Amount)
		if err := s.line(c.InvoiceID, FormatColones(c.Total), FormatColones(c.Amount)); err != nil {
			return nil, err
		}
	}
	if err := s.styled("Total comisiones", "", FormatColones(total)); err != nil {
		return nil, err
	}
	return s.done(4)
}

// StockCountTemplate is the workbook users fill in for a bulk count upload.
func StockCountTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(Sheet, "A1", &[]any{"nombre", "cantidad"}); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(Sheet, "A", "B", 24); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write streams the workbook and releases it.
func Write(w io.Writer, f *excelize.File) error {
	defer f.Close()
	return f.Write(w)
}
