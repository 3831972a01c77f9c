package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoices struct {
	pending map[int64]*entity.Invoice
	err     error
}

func (f *fakeInvoices) FindPending(_ context.Context, clientID int64) (*entity.Invoice, error) {
	return f.pending[clientID], f.err
}

type fakeTables struct {
	occupied map[int64]*entity.Table
	err      error
}

func (f *fakeTables) FindOccupied(_ context.Context, id int64) (*entity.Table, error) {
	return f.occupied[id], f.err
}

type fakeOrders struct {
	orders    map[int64]*entity.Order
	nextID    int64
	appendOK  bool
	createErr error
	appendErr error
	unlisted  bool

	created  []*entity.Order
	appended map[int64][]entity.OrderItem
	statuses map[int64]string
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{
		orders:   map[int64]*entity.Order{},
		nextID:   100,
		appendOK: true,
		appended: map[int64][]entity.OrderItem{},
		statuses: map[int64]string{},
	}
}

func (f *fakeOrders) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	if f.unlisted {
		return nil, nil
	}
	return f.orders[id], nil
}

func (f *fakeOrders) List(context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) Create(_ context.Context, o *entity.Order) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	cp := *o
	cp.ID = id
	f.orders[id] = &cp
	f.created = append(f.created, &cp)
	return id, nil
}

func (f *fakeOrders) AppendDetails(_ context.Context, id int64, items []entity.OrderItem) (bool, error) {
	if f.appendErr != nil || !f.appendOK {
		return false, f.appendErr
	}
	f.appended[id] = append(f.appended[id], items...)
	f.orders[id].Items = append(f.orders[id].Items, items...)
	return true, nil
}

func (f *fakeOrders) GetDetails(_ context.Context, id int64) ([]entity.OrderItem, error) {
	return f.orders[id].Items, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int64, status string) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	f.statuses[id] = status
	return true, nil
}

type published struct {
	event   string
	payload any
}

type recordingPublisher struct{ got []published }

func (r *recordingPublisher) Publish(event string, payload any) {
	r.got = append(r.got, published{event, payload})
}

func (r *recordingPublisher) events() []string {
	var out []string
	for _, p := range r.got {
		out = append(out, p.event)
	}
	return out
}

type fixture struct {
	svc      *OrderService
	invoices *fakeInvoices
	tables   *fakeTables
	orders   *fakeOrders
	pub      *recordingPublisher
	logs     *test.Hook
}

func newFixture() *fixture {
	logger, hook := test.NewNullLogger()
	f := &fixture{
		logs:     hook,
		invoices: &fakeInvoices{pending: map[int64]*entity.Invoice{}},
		tables:   &fakeTables{occupied: map[int64]*entity.Table{}},
		orders:   newFakeOrders(),
		pub:      &recordingPublisher{},
	}
	f.svc = NewOrderService(f.invoices, f.orders, f.tables, f.pub, logger)
	f.svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

// seatOpenTab gives the client a pending invoice for an order at the table.
func (f *fixture) seatOpenTab(clientID, orderID, tableID int64, tableName string) {
	f.orders.orders[orderID] = &entity.Order{
		ID: orderID, ClientID: clientID, TableID: tableID, TableName: tableName,
		Items: []entity.OrderItem{{OrderID: orderID, ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(1500), Total: decimal.NewFromInt(1500)}},
	}
	f.invoices.pending[clientID] = &entity.Invoice{ID: 7, OrderID: orderID}
	f.tables.occupied[tableID] = &entity.Table{ID: tableID, Name: tableName, Status: "Ocupada"}
}

func placeReq(clientID, tableID int64) *PlaceOrderReq {
	return &PlaceOrderReq{
		ClientID: clientID, TableID: tableID, UserID: 3, Comment: "sin cebolla",
		Items: []OrderItemIn{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(2500)},
			{ProductID: 11, Quantity: 1, UnitPrice: decimal.NewFromInt(1200)},
		},
	}
}

func TestPlaceOrderCreatesSessionOnFreeTable(t *testing.T) {
	f := newFixture()

	res, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, int64(100), res.OrderID)
	assert.Equal(t, "Orden registrada correctamente", res.Message)

	require.Len(t, f.orders.created, 1)
	o := f.orders.created[0]
	assert.Equal(t, entity.OrderPending, o.Status)
	assert.Equal(t, f.svc.now(), o.OrderedAt)
	require.Len(t, o.Items, 2)
	assert.True(t, decimal.NewFromInt(5000).Equal(o.Items[0].Total))

	assert.Equal(t, []string{"nuevaOrden"}, f.pub.events())
	assert.Equal(t, int64(100), f.pub.got[0].payload.(*entity.Order).ID)
}

func TestPlaceOrderSkipsPublishWhenCreatedOrderIsMissing(t *testing.T) {
	f := newFixture()
	f.orders.unlisted = true

	res, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, int64(100), res.OrderID)
	assert.Empty(t, f.pub.got)
	require.NotNil(t, f.logs.LastEntry())
	assert.Equal(t, logrus.WarnLevel, f.logs.LastEntry().Level)
	assert.Equal(t, int64(100), f.logs.LastEntry().Data["idOrden"])
}

func TestPlaceOrderAppendsToOpenSession(t *testing.T) {
	f := newFixture()
	f.seatOpenTab(1, 42, 5, "Mesa 5")

	res, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, int64(42), res.OrderID)
	assert.Equal(t, "Detalle añadido a la orden existente correctamente", res.Message)

	assert.Len(t, f.orders.appended[42], 2)
	assert.Empty(t, f.orders.created)

	require.Equal(t, []string{"nuevaOrden", "ordenActualizada"}, f.pub.events())
	full := f.pub.got[0].payload.([]entity.OrderItem)
	assert.Len(t, full, 3)
	updated := f.pub.got[1].payload.(map[string]any)
	assert.Equal(t, int64(42), updated["idOrden"])
	assert.Len(t, updated["detalles"], 3)
}

func TestPlaceOrderRejectsOtherTableForOpenSession(t *testing.T) {
	f := newFixture()
	f.seatOpenTab(1, 42, 5, "Mesa 5")

	_, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 7))
	require.Error(t, err)
	assert.Equal(t, apperr.TableMismatch, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "La mesa correcta es: Mesa 5")
	assert.Empty(t, f.orders.appended)
	assert.Empty(t, f.pub.got)
}

func TestPlaceOrderRejectsOccupiedTable(t *testing.T) {
	f := newFixture()
	f.seatOpenTab(1, 42, 5, "Mesa 5")

	_, err := f.svc.PlaceOrder(context.Background(), placeReq(2, 5))
	require.Error(t, err)
	assert.Equal(t, apperr.TableOccupied, apperr.KindOf(err))
	assert.Empty(t, f.orders.created)
	assert.Empty(t, f.pub.got)
}

func TestPlaceOrderReportsMissingPendingOrder(t *testing.T) {
	f := newFixture()
	f.invoices.pending[1] = &entity.Invoice{ID: 7, OrderID: 99}

	_, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
	require.Error(t, err)
	assert.Equal(t, apperr.InconsistentState, apperr.KindOf(err))
	assert.Equal(t, 400, apperr.Status(apperr.KindOf(err)))
	assert.Contains(t, apperr.MessageOf(err), "No se encontró una orden para la factura pendiente")
}

func TestPlaceOrderValidation(t *testing.T) {
	cases := map[string]func(*PlaceOrderReq){
		"no client":      func(r *PlaceOrderReq) { r.ClientID = 0 },
		"no table":       func(r *PlaceOrderReq) { r.TableID = 0 },
		"no items":       func(r *PlaceOrderReq) { r.Items = nil },
		"zero quantity":  func(r *PlaceOrderReq) { r.Items[0].Quantity = 0 },
		"negative price": func(r *PlaceOrderReq) { r.Items[1].UnitPrice = decimal.NewFromInt(-1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			req := placeReq(1, 5)
			mutate(req)

			_, err := f.svc.PlaceOrder(context.Background(), req)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
			assert.Empty(t, f.orders.created)
		})
	}
}

func TestPlaceOrderKeepsExplicitTotals(t *testing.T) {
	f := newFixture()
	req := placeReq(1, 5)
	total := decimal.NewFromInt(4000)
	req.Items[0].Total = &total
	req.Status = "En proceso"

	_, err := f.svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	o := f.orders.created[0]
	assert.True(t, total.Equal(o.Items[0].Total))
	assert.Equal(t, "En proceso", o.Status)
}

func TestPlaceOrderPersistenceFailures(t *testing.T) {
	boom := errors.New("connection reset")

	t.Run("lookup", func(t *testing.T) {
		f := newFixture()
		f.tables.err = boom
		_, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("create", func(t *testing.T) {
		f := newFixture()
		f.orders.createErr = boom
		_, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
		assert.Equal(t, "Error al registrar la orden", apperr.MessageOf(err))
		assert.Empty(t, f.pub.got)
	})

	t.Run("append inserted nothing", func(t *testing.T) {
		f := newFixture()
		f.seatOpenTab(1, 42, 5, "Mesa 5")
		f.orders.appendOK = false
		_, err := f.svc.PlaceOrder(context.Background(), placeReq(1, 5))
		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
		assert.Equal(t, "Error al agregar el detalle a la orden", apperr.MessageOf(err))
		assert.Empty(t, f.pub.got)
	})
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture()
	f.seatOpenTab(1, 42, 5, "Mesa 5")

	require.NoError(t, f.svc.UpdateStatus(context.Background(), 42, "Entregada"))
	assert.Equal(t, "Entregada", f.orders.statuses[42])
	assert.Equal(t, []string{"estadoOrden"}, f.pub.events())

	err := f.svc.UpdateStatus(context.Background(), 42, "  ")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "El estado de la orden es requerido", apperr.MessageOf(err))

	err = f.svc.UpdateStatus(context.Background(), 500, "Entregada")
	assert.Equal(t, "Error al cambiar el estado de la orden", apperr.MessageOf(err))
}

func TestFanoutPublisherReachesEverySink(t *testing.T) {
	a, b := &recordingPublisher{}, &recordingPublisher{}
	FanoutPublisher{a, nil, b}.Publish("nuevaOrden", 1)
	assert.Equal(t, []string{"nuevaOrden"}, a.events())
	assert.Equal(t, []string{"nuevaOrden"}, b.events())
}
