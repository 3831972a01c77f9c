package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// orderDetailRow is one row of the order-with-details procedures: the order
// columns repeated for each of its lines.
type orderDetailRow struct {
	IDOrden        int64           `gorm:"column:idOrden"`
	FechaOrden     time.Time       `gorm:"column:fechaOrden"`
	IDUsuario      int64           `gorm:"column:idUsuario"`
	IDCliente      int64           `gorm:"column:idCliente"`
	Comentario     string          `gorm:"column:comentario"`
	Estado         string          `gorm:"column:estado"`
	IDMesa         int64           `gorm:"column:idMesa"`
	NombreMesa     string          `gorm:"column:nombreMesa"`
	IDDetalleOrden *int64          `gorm:"column:idDetalleOrden"`
	IDProducto     *int64          `gorm:"column:idProducto"`
	NombreProducto string          `gorm:"column:nombreProducto"`
	Cantidad       int             `gorm:"column:cantidad"`
	ComentarioDet  string          `gorm:"column:comentarioDetalle"`
	PrecioUnitario decimal.Decimal `gorm:"column:precioUnitario"`
	Total          decimal.Decimal `gorm:"column:total"`
}

// groupOrders folds detail rows into orders, keeping the order the
// procedure returned them in.
func groupOrders(rows []orderDetailRow) []entity.Order {
	var out []entity.Order
	index := map[int64]int{}
	for _, r := range rows {
		i, ok := index[r.IDOrden]
		if !ok {
			out = append(out, entity.Order{
				ID:        r.IDOrden,
				OrderedAt: r.FechaOrden,
				UserID:    r.IDUsuario,
				ClientID:  r.IDCliente,
				Comment:   r.Comentario,
				Status:    r.Estado,
				TableID:   r.IDMesa,
				TableName: r.NombreMesa,
				Items:     []entity.OrderItem{},
			})
			i = len(out) - 1
			index[r.IDOrden] = i
		}
		// LEFT JOIN rows for an order without lines carry no product
		if r.IDProducto == nil {
			continue
		}
		item := entity.OrderItem{
			OrderID:     r.IDOrden,
			ProductID:   *r.IDProducto,
			ProductName: r.NombreProducto,
			Quantity:    r.Cantidad,
			Comment:     r.ComentarioDet,
			UnitPrice:   r.PrecioUnitario,
			Total:       r.Total,
		}
		if r.IDDetalleOrden != nil {
			item.ID = *r.IDDetalleOrden
		}
		out[i].Items = append(out[i].Items, item)
	}
	return out
}

// lineItem is the JSON shape the order procedures parse with JSON_TABLE.
type lineItem struct {
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	Comentario     string          `json:"comentario"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
}

func encodeItems(items []entity.OrderItem) (string, error) {
	payload := make([]lineItem, 0, len(items))
	for _, it := range items {
		payload = append(payload, lineItem{
			IDProducto:     it.ProductID,
			Cantidad:       it.Quantity,
			Comentario:     it.Comment,
			PrecioUnitario: it.UnitPrice,
			Total:          it.Total,
		})
	}
	b, err := json.Marshal(payload)
	return string(b), err
}

// FindByID returns the order with its lines, or nil when it does not exist.
func (r *OrderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	var rows []orderDetailRow
	if err := call(ctx, r.DB, &rows, "sp_ObtenerOrdenConDetalles", orderID); err != nil {
		return nil, err
	}
	orders := groupOrders(rows)
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var rows []orderDetailRow
	if err := call(ctx, r.DB, &rows, "sp_ObtenerOrdenesConDetalles"); err != nil {
		return nil, err
	}
	return groupOrders(rows), nil
}

// Create registers the order and all of its lines in one call and returns
// the new id (0 when the procedure selected nothing back).
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) (int64, error) {
	items, err := encodeItems(o.Items)
	if err != nil {
		return 0, err
	}
	return insertedID(ctx, r.DB, "sp_RegistrarOrden",
		o.OrderedAt, o.UserID, o.ClientID, o.Comment, o.Status, o.TableID, items)
}

// AppendDetails adds every line to an existing order. It reports false when
// the procedure inserted nothing.
func (r *OrderRepository) AppendDetails(ctx context.Context, orderID int64, items []entity.OrderItem) (bool, error) {
	payload, err := encodeItems(items)
	if err != nil {
		return false, err
	}
	var added []entity.OrderItem
	if err := call(ctx, r.DB, &added, "sp_AgregarDetalle", orderID, payload); err != nil {
		return false, err
	}
	return len(added) > 0, nil
}

// GetDetails returns the full current line list of an order.
func (r *OrderRepository) GetDetails(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	if err := call(ctx, r.DB, &items, "sp_ObtenerDetalle", orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus reports false when no order has the given id.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string) (bool, error) {
	o, err := one[entity.Order](ctx, r.DB, "sp_ActualizarEstadoOrden", orderID, status)
	if err != nil {
		return false, err
	}
	return o != nil, nil
}
