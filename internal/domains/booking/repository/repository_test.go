package repository_test

import (
	"context"
	"errors"
	"regexp"
	"tatzy/infras/otel/mocks"
	"tatzy/infras/postgres"
	"tatzy/internal/domains/booking/model"
	"tatzy/internal/domains/booking/repository"
	"tatzy/shared"
	gDto "tatzy/shared/dto"
	gModel "tatzy/shared/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func TestInsert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings (id, customer_name, customer_phone")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Booking{ID: "b-1", Status: model.StatusPending, Metadata: gModel.Metadata{CreatedAt: time.Now()}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DoesNotWriteJoinedColumns(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(`INSERT INTO bookings \(.*source, created_at, modified_at, created_by, modified_by\) VALUES`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), model.Booking{ID: "b-1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Error(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))

	err := repo.Insert(context.Background(), model.Booking{ID: "b-1"})

	assert.ErrorContains(t, err, "failed to insert data (booking)")
}

func TestGet(t *testing.T) {
	repo, mock := newRepository(t)

	driverID := "3b241101-e2bb-4255-8caf-4136c566a962"
	rows := sqlmock.NewRows([]string{"id", "customer_name", "status", "driver_id", "driver_name", "pickup_date_time"}).
		AddRow("b-1", "Jean Dupont", model.StatusAssigned, driverID, "Marc Tremblay", time.Now())

	mock.ExpectPrepare(regexp.QuoteMeta("drivers.name AS driver_name, drivers.phone AS driver_phone, drivers.email AS driver_email")).
		ExpectQuery().
		WithArgs("b-1").
		WillReturnRows(rows)

	booking, err := repo.Get(context.Background(), byID("b-1"))
	require.NoError(t, err)

	assert.Equal(t, "b-1", booking.ID)
	assert.Equal(t, "Jean Dupont", booking.CustomerName)
	require.NotNil(t, booking.DriverName)
	assert.Equal(t, "Marc Tremblay", *booking.DriverName)
	assert.True(t, booking.HasDriver())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFoundReturnsZero(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings LEFT JOIN drivers ON drivers.id = bookings.driver_id")).
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.Get(context.Background(), byID("missing"))

	require.NoError(t, err)
	assert.Empty(t, booking.ID)
}

func TestGetAll(t *testing.T) {
	repo, mock := newRepository(t)

	params := gDto.QueryParams{Page: 2, Limit: 1, SortBy: "bookings.created_at", SortDir: gDto.SortDirDesc}
	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}}

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (bookings.status = $1)  ORDER BY bookings.created_at DESC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs(model.StatusPending, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bookings, err := repo.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(bookings.id) FROM bookings LEFT JOIN drivers")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.Count(context.Background(), gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExist(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM bookings  WHERE (bookings.id = $1) )")).
		ExpectQuery().
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exist, err := repo.Exist(context.Background(), byID("b-1"))

	require.NoError(t, err)
	assert.True(t, exist)
}

func TestExist_RequiresFilter(t *testing.T) {
	repo, _ := newRepository(t)

	_, err := repo.Exist(context.Background(), gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET dispatcher_notes = $1, driver_id = $2, status = $3  WHERE (bookings.id = $4)")).
		WithArgs("client VIP", nil, model.StatusCancelled, "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{
		model.FieldStatus:          model.StatusCancelled,
		model.FieldDriverID:        nil,
		model.FieldDispatcherNotes: "client VIP",
	}, byID("b-1"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Guards(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Error(t, repo.Update(context.Background(), map[string]any{}, byID("b-1")))
	assert.Error(t, repo.Update(context.Background(), map[string]any{"status": "PENDING"}, gDto.FilterGroup{}))
}
