package services

import (
	"context"
	"testing"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"
	"github.com/Techkepper/PoskepperApi/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoiceStore struct {
	fakeInvoices
	byID      map[int64]*entity.Invoice
	created   []*entity.Invoice
	refreshed []int64
	paid      []int64
}

func (f *fakeInvoiceStore) FindByID(_ context.Context, id int64) (*entity.Invoice, error) {
	return f.byID[id], nil
}

func (f *fakeInvoiceStore) Create(_ context.Context, inv *entity.Invoice) (int64, error) {
	f.created = append(f.created, inv)
	return 31, nil
}

func (f *fakeInvoiceStore) Refresh(_ context.Context, id int64) error {
	f.refreshed = append(f.refreshed, id)
	return nil
}

func (f *fakeInvoiceStore) MarkPaid(_ context.Context, id int64) error {
	f.paid = append(f.paid, id)
	return nil
}

func newInvoiceFixture() (*InvoiceService, *fakeInvoiceStore, *fakeOrders, *recordingPublisher) {
	store := &fakeInvoiceStore{
		fakeInvoices: fakeInvoices{pending: map[int64]*entity.Invoice{}},
		byID:         map[int64]*entity.Invoice{},
	}
	orders := newFakeOrders()
	orders.orders[42] = &entity.Order{ID: 42, ClientID: 1, TableID: 5}
	pub := &recordingPublisher{}
	return NewInvoiceService(store, orders, pub), store, orders, pub
}

func invoiceReq(orderID int64) *RegisterInvoiceReq {
	total := decimal.NewFromInt(6200)
	return &RegisterInvoiceReq{OrderID: orderID, Date: time.Now(), Total: &total, UserID: 3}
}

func TestRegisterInvoiceCreatesFirstInvoice(t *testing.T) {
	svc, store, _, _ := newInvoiceFixture()

	res, err := svc.Register(context.Background(), invoiceReq(42))
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, int64(31), res.InvoiceID)
	require.Len(t, store.created, 1)
	assert.Equal(t, int64(42), store.created[0].OrderID)
}

func TestRegisterInvoiceRefreshesPending(t *testing.T) {
	svc, store, _, _ := newInvoiceFixture()
	store.pending[1] = &entity.Invoice{ID: 9, OrderID: 42}

	res, err := svc.Register(context.Background(), invoiceReq(42))
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, int64(9), res.InvoiceID)
	assert.Equal(t, []int64{9}, store.refreshed)
	assert.Empty(t, store.created)
}

func TestRegisterInvoiceUnknownOrder(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture()
	_, err := svc.Register(context.Background(), invoiceReq(404))
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestRegisterInvoiceRequiresTotal(t *testing.T) {
	svc, store, _, _ := newInvoiceFixture()
	req := invoiceReq(42)
	req.Total = nil

	_, err := svc.Register(context.Background(), req)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Empty(t, store.created)

	negative := decimal.NewFromInt(-1)
	req.Total = &negative
	_, err = svc.Register(context.Background(), req)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestMarkPaidClosesSession(t *testing.T) {
	svc, store, _, pub := newInvoiceFixture()
	store.byID[9] = &entity.Invoice{ID: 9, OrderID: 42}

	require.NoError(t, svc.MarkPaid(context.Background(), 9))
	assert.Equal(t, []int64{9}, store.paid)
	assert.Equal(t, []string{"facturaPagada"}, pub.events())

	err := svc.MarkPaid(context.Background(), 10)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
