package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Techkepper/PoskepperApi/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func q(sql string) string { return regexp.QuoteMeta(sql) }

var orderColumns = []string{
	"idOrden", "fechaOrden", "idUsuario", "idCliente", "comentario", "estado", "idMesa", "nombreMesa",
	"idDetalleOrden", "idProducto", "nombreProducto", "cantidad", "comentarioDetalle", "precioUnitario", "total",
}

func TestCallStmt(t *testing.T) {
	assert.Equal(t, "CALL sp_ObtenerMesas()", callStmt("sp_ObtenerMesas", 0))
	assert.Equal(t, "CALL sp_ObtenerDetalle(?)", callStmt("sp_ObtenerDetalle", 1))
	assert.Equal(t, "CALL sp_AgregarDetalle(?, ?)", callStmt("sp_AgregarDetalle", 2))
}

func TestOrderFindByIDGroupsDetailRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderColumns).
		AddRow(42, at, 3, 1, "", "Pendiente", 5, "Mesa 5", 100, 7, "Casado", 2, "sin cebolla", "3500", "7000").
		AddRow(42, at, 3, 1, "", "Pendiente", 5, "Mesa 5", 101, 9, "Refresco", 1, "", "1200", "1200")
	mock.ExpectQuery(q("CALL sp_ObtenerOrdenConDetalles(?)")).WithArgs(int64(42)).WillReturnRows(rows)

	o, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, int64(5), o.TableID)
	assert.Equal(t, "Mesa 5", o.TableName)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "sin cebolla", o.Items[0].Comment)
	assert.True(t, decimal.NewFromInt(7000).Equal(o.Items[0].Total))
	assert.Equal(t, int64(9), o.Items[1].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByIDMissingReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(q("CALL sp_ObtenerOrdenConDetalles(?)")).WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	o, err := repo.FindByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, o)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateSendsAllItemsAsJSON(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	order := &entity.Order{
		OrderedAt: at, UserID: 3, ClientID: 1, Comment: "mesa del fondo",
		Status: entity.OrderPending, TableID: 5,
		Items: []entity.OrderItem{
			{ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(3500), Total: decimal.NewFromInt(7000)},
			{ProductID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(1200), Total: decimal.NewFromInt(1200)},
		},
	}
	items := `[{"idProducto":7,"cantidad":2,"comentario":"","precioUnitario":"3500","total":"7000"},` +
		`{"idProducto":9,"cantidad":1,"comentario":"","precioUnitario":"1200","total":"1200"}]`

	mock.ExpectQuery(q("CALL sp_RegistrarOrden(?, ?, ?, ?, ?, ?, ?)")).
		WithArgs(at, int64(3), int64(1), "mesa del fondo", "Pendiente", int64(5), items).
		WillReturnRows(sqlmock.NewRows([]string{"idOrden"}).AddRow(int64(77)))

	id, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAppendDetails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	items := []entity.OrderItem{{ProductID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(3500), Total: decimal.NewFromInt(3500)}}

	mock.ExpectQuery(q("CALL sp_AgregarDetalle(?, ?)")).WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"idDetalleOrden", "idOrden", "idProducto", "cantidad"}).AddRow(102, 42, 7, 1))
	ok, err := repo.AppendDetails(context.Background(), 42, items)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(q("CALL sp_AgregarDetalle(?, ?)")).WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"idDetalleOrden"}))
	ok, err = repo.AppendDetails(context.Background(), 42, items)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderListKeepsEmptyOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	at := time.Now()

	rows := sqlmock.NewRows(orderColumns).
		AddRow(1, at, 3, 1, "", "Pendiente", 5, "Mesa 5", nil, nil, nil, 0, nil, "0", "0").
		AddRow(2, at, 3, 2, "", "Servida", 6, "Mesa 6", 10, 7, "Casado", 1, "", "3500", "3500")
	mock.ExpectQuery(q("CALL sp_ObtenerOrdenesConDetalles()")).WillReturnRows(rows)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Empty(t, orders[0].Items)
	assert.Len(t, orders[1].Items, 1)
}

func TestTableFindOccupied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q("CALL sp_ObtenerMesaOcupada(?)")).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"idMesa", "nombre", "estado"}).AddRow(5, "Mesa 5", "Ocupada"))
	mock.ExpectQuery(q("CALL sp_ObtenerMesaOcupada(?)")).WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"idMesa", "nombre", "estado"}))

	occupied, err := repo.FindOccupied(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, occupied)
	assert.Equal(t, "Mesa 5", occupied.Name)

	free, err := repo.FindOccupied(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, free)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsReadsExisteColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectQuery(q("CALL sp_ExisteNombreMesa(?)")).WithArgs("Terraza").
		WillReturnRows(sqlmock.NewRows([]string{"existe"}).AddRow(1))
	mock.ExpectQuery(q("CALL sp_ExisteNombreMesa(?)")).WithArgs("Barra").
		WillReturnRows(sqlmock.NewRows([]string{"existe"}).AddRow(0))

	ok, err := repo.ExistsName(context.Background(), "Terraza")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsName(context.Background(), "Barra")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcedureErrorsAreWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(q("CALL sp_ObtenerFacturaPendiente(?)")).WithArgs(int64(1)).WillReturnError(boom)

	inv, err := repo.FindPending(context.Background(), 1)
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "sp_ObtenerFacturaPendiente")
}

func TestInvoiceCreateAndMarkPaid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectQuery(q("CALL sp_CrearFactura(?, ?, ?, ?)")).
		WithArgs(int64(42), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"idFactura"}).AddRow(int64(8)))
	mock.ExpectExec(q("CALL sp_ActualizarEstadoFactura(?)")).WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Create(context.Background(), &entity.Invoice{OrderID: 42, UserID: 3, Date: time.Now(), Total: decimal.NewFromInt(8200)})
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
	require.NoError(t, repo.MarkPaid(context.Background(), 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdatePassesNullForUnsetFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	email := "nuevo@poskeeper.cr"

	mock.ExpectExec(q("CALL sp_ActualizarUsuario(?, ?, ?, ?, ?, ?, ?, ?, ?)")).
		WithArgs(int64(4), nil, nil, nil, nil, nil, nil, email, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 4, entity.UserUpdate{Email: &email}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementFindByIDGroupsLines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovementRepository(db)
	at := time.Now()
	cols := []string{"idMovimiento", "fecha", "motivo", "tipoMovimiento", "tipoMovimientoNombre", "idUsuario",
		"nombreCompleto", "idDetalleMovimiento", "idProducto", "nombreProducto", "cantidadMovimiento",
		"cantidadVieja", "cantidadActual", "comentarioDetalle"}

	mock.ExpectQuery(q("CALL sp_ObtenerMovimientoInventarioConDetalles(?)")).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, at, "Compra semanal", "E", "Entrada", 1, "Ana Mora", 1, 7, "Arroz", 10, 5, 15, "").
			AddRow(3, at, "Compra semanal", "E", "Entrada", 1, "Ana Mora", 2, 9, "Refresco", 24, 0, 24, "caja"))

	m, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Entrada", m.KindName)
	require.Len(t, m.Items, 2)
	assert.Equal(t, 15, m.Items[0].Current)
	assert.Equal(t, "caja", m.Items[1].Comment)
}

func TestUtilNow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUtilRepository(db)
	at := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

	mock.ExpectQuery(q("CALL sp_ObtenerHora()")).WillReturnRows(sqlmock.NewRows([]string{"hora"}).AddRow(at))

	now, err := repo.Now(context.Background())
	require.NoError(t, err)
	assert.True(t, at.Equal(now))
}
