package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/pkg/report"

	"github.com/shopspring/decimal"
)

const (
	msgUnreadableWorkbook = "El archivo Excel está vacío o no se pudo leer correctamente"
	msgBadHeaders         = "El formato del archivo Excel es incorrecto o no tiene las cabeceras esperadas"
	msgNoRows             = "El archivo Excel no contiene datos"
	msgQuantityPositive   = "La cantidad debe ser mayor a 0"
	msgProductMissing     = "El producto no existe"
)

type StockCountStore interface {
	Create(ctx context.Context, s *entity.StockCount) error
	ProductExists(ctx context.Context, name string) (bool, error)
	SetCounted(ctx context.Context, name string, quantity int) error
}

type StockCountService struct {
	store StockCountStore
}

func NewStockCountService(store StockCountStore) *StockCountService {
	return &StockCountService{store: store}
}

func (s *StockCountService) Register(ctx context.Context, sc *entity.StockCount) error {
	return s.store.Create(ctx, sc)
}

// AddProduct records the counted quantity of one product by name.
func (s *StockCountService) AddProduct(ctx context.Context, name string, quantity int) error {
	if quantity <= 0 {
		return apperr.Validationf(msgQuantityPositive)
	}
	ok, err := s.store.ProductExists(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf(msgProductMissing)
	}
	return s.store.SetCounted(ctx, name, quantity)
}

// ImportResult lists per-row outcomes of a workbook upload. Rows are numbered
// as they appear in the sheet, the header being row 1.
type ImportResult struct {
	Errors  []string `json:"errores"`
	Applied []string `json:"productosAgregados"`
}

func (r *ImportResult) Failed() bool { return len(r.Errors) > 0 }

// Summary joins every outcome, errors first.
func (r *ImportResult) Summary() string {
	return strings.Join(append(append([]string{}, r.Errors...), r.Applied...), "; ")
}

// Import applies a "nombre | cantidad" workbook row by row. A bad row never
// stops the rows after it.
func (s *StockCountService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := report.ReadFirstSheet(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.Validation, msgUnreadableWorkbook, err)
	}
	if len(rows) == 0 || len(rows[0]) < 2 || rows[0][0] != "nombre" || rows[0][1] != "cantidad" {
		return nil, apperr.Validationf(msgBadHeaders)
	}
	data := rows[1:]
	if len(data) == 0 {
		return nil, apperr.Validationf(msgNoRows)
	}

	res := &ImportResult{Errors: []string{}, Applied: []string{}}
	for i, row := range data {
		if len(row) > 2 {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: He encontrado productos fuera de los rangos permitidos (columnas A y B). Por favor, asegúrate de que los datos estén solo en las columnas A y B.", i+2))
		}
	}

	for i, row := range data {
		line := i + 2
		if len(row) < 2 || row[0] == "" || row[1] == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: Todos los campos son requeridos", line))
			continue
		}
		name := row[0]

		qty, err := decimal.NewFromString(row[1])
		if err != nil || !qty.IsPositive() || !qty.Equal(qty.Truncate(0)) {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: La cantidad debe ser un número mayor a 0", line))
			continue
		}

		ok, err := s.store.ProductExists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: El producto %s no existe", line, name))
			continue
		}

		if err := s.store.SetCounted(ctx, name, int(qty.IntPart())); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: No se pudo agregar el producto %s a la toma", line, name))
			continue
		}
		res.Applied = append(res.Applied, fmt.Sprintf("Fila %d: Producto %s agregado con cantidad %d", line, name, qty.IntPart()))
	}
	return res, nil
}
