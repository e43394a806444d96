package order_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-erp/internal/domain"
	"go-erp/internal/order"
	ordererrors "go-erp/internal/order/errors"
	orderMock "go-erp/internal/order/mock"
	"go-erp/internal/shared/counter"
	counterMock "go-erp/internal/shared/counter/mock"
	"go-erp/internal/shared/search"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service order.Service
	repo    *orderMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := orderMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: order.NewService(db, repo, counterRepo),
		repo:    repo,
		counter: counterRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func ptr[T any](v T) *T { return &v }

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-000001", order.FormatOrderNumber(1))
	assert.Equal(t, "ORD-123456", order.FormatOrderNumber(123456))
	assert.Equal(t, "ORD-1234567", order.FormatOrderNumber(1234567))
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	req := order.CreateOrderRequest{
		CustomerID:     4,
		Description:    "pallets",
		Weight:         800,
		PickUpAddress:  "Ilica 1, Zagreb",
		DropOffAddress: "Riva 2, Split",
		OrderDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Price:          420,
	}

	t.Run("numbers the order and starts it as NEW", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CustomerExists(ctx, int64(4)).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(ctx, counter.OrderNumber).Return(int64(42), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) error {
				o.ID = 1
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "ORD-000042", resp.OrderNumber)
		assert.Equal(t, domain.OrderStatusNew, resp.Status)
	})

	t.Run("unknown customer", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CustomerExists(ctx, int64(4)).Return(false, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, ordererrors.ErrCustomerNotFound)
	})

	t.Run("counter failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CustomerExists(ctx, int64(4)).Return(true, nil)
		deps.counter.EXPECT().GetNextValue(ctx, counter.OrderNumber).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, req)
		assert.EqualError(t, err, "db down")
	})

	t.Run("weight must be positive", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.Weight = 0

		_, err := deps.service.Create(ctx, bad)
		assert.ErrorIs(t, err, ordererrors.ErrInvalidWeight)
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 1, order.UpdateOrderRequest{Status: ptr("LOST")})
		assert.ErrorIs(t, err, ordererrors.ErrInvalidStatus)
	})

	t.Run("partial", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, int64(1)).Return(&order.Order{ID: 1, Price: 100, Status: domain.OrderStatusNew}, nil)
		deps.repo.EXPECT().Update(ctx, &order.Order{ID: 1, Price: 150, Status: domain.OrderStatusNew}).Return(nil)

		resp, err := deps.service.Update(ctx, 1, order.UpdateOrderRequest{Price: ptr(150.0)})

		require.NoError(t, err)
		assert.Equal(t, 150.0, resp.Price)
	})
}

func TestOrderService_MarkDeliveredIfComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("no open jobs", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, int64(8)).Return(&order.Order{ID: 8, Status: domain.OrderStatusInProgress}, nil)
		deps.repo.EXPECT().CountOpenJobs(ctx, int64(8)).Return(int64(0), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) error {
				assert.Equal(t, domain.OrderStatusDelivered, o.Status)
				return nil
			})

		changed, err := deps.service.MarkDeliveredIfComplete(ctx, 8)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("jobs still open", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, int64(8)).Return(&order.Order{ID: 8, Status: domain.OrderStatusInProgress}, nil)
		deps.repo.EXPECT().CountOpenJobs(ctx, int64(8)).Return(int64(2), nil)

		changed, err := deps.service.MarkDeliveredIfComplete(ctx, 8)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("already delivered is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, int64(8)).Return(&order.Order{ID: 8, Status: domain.OrderStatusDelivered}, nil)

		changed, err := deps.service.MarkDeliveredIfComplete(ctx, 8)

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestOrderService_Search(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		Search(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec *search.Spec, p search.Pageable) (search.Page[order.OrderRow], error) {
			assert.Len(t, spec.Conditions(), 2)
			require.Len(t, p.Joins(), 1)
			assert.Equal(t, "customers", p.Joins()[0].Name)
			return search.Page[order.OrderRow]{
				Content: []order.OrderRow{{Order: order.Order{ID: 2, OrderNumber: "ORD-000002"}, CustomerName: ptr("Acme")}},
				Page:    p.Page, Size: p.Size, TotalElements: 1,
			}, nil
		})

	resp, err := deps.service.Search(ctx, &order.OrderSearchCriteria{
		CustomerName: ptr("ac"),
		Status:       ptr(domain.OrderStatusNew),
		PageCriteria: search.PageCriteria{SortBy: ptr("customerName")},
	})

	require.NoError(t, err)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Acme", resp.Content[0].CustomerName)

	_, err = deps.service.Search(ctx, &order.OrderSearchCriteria{Status: ptr("new")})
	assert.ErrorIs(t, err, ordererrors.ErrInvalidStatus)
}
