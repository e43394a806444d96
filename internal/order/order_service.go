package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go-erp/internal/domain"
	ordererrors "go-erp/internal/order/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/counter"
	"go-erp/internal/shared/search"

	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
	GetByID(ctx context.Context, id int64) (OrderResponse, error)
	Update(ctx context.Context, id int64, req UpdateOrderRequest) (OrderResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *OrderSearchCriteria) (search.PageResponse[OrderTableInfo], error)
	MarkDeliveredIfComplete(ctx context.Context, orderID int64) (bool, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("order.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, logger: l}
}

func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("ORD-%06d", n)
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (OrderResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Weight <= 0 {
		return OrderResponse{}, ordererrors.ErrInvalidWeight
	}
	if req.Price < 0 {
		return OrderResponse{}, ordererrors.ErrInvalidPrice
	}

	ok, err := s.repo.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return OrderResponse{}, err
	}
	if !ok {
		return OrderResponse{}, ordererrors.ErrCustomerNotFound
	}

	next, err := s.counter.GetNextValue(ctx, counter.OrderNumber)
	if err != nil {
		log.Error("next order number failed", zap.Error(err))
		return OrderResponse{}, err
	}

	o := &Order{
		OrderNumber:    FormatOrderNumber(next),
		CustomerID:     req.CustomerID,
		Description:    strings.TrimSpace(req.Description),
		Weight:         req.Weight,
		PickUpAddress:  req.PickUpAddress,
		DropOffAddress: req.DropOffAddress,
		OrderDate:      req.OrderDate,
		Price:          req.Price,
		Status:         domain.OrderStatusNew,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("create order failed", zap.Error(err))
		return OrderResponse{}, mapRepositoryError(err)
	}

	log.Info("create order success",
		zap.Int64("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
	)
	return mapToResponse(*o), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateOrderRequest) (OrderResponse, error) {
	if req.Weight != nil && *req.Weight <= 0 {
		return OrderResponse{}, ordererrors.ErrInvalidWeight
	}
	if req.Price != nil && *req.Price < 0 {
		return OrderResponse{}, ordererrors.ErrInvalidPrice
	}
	if req.Status != nil && !domain.IsValidOrderStatus(*req.Status) {
		return OrderResponse{}, ordererrors.ErrInvalidStatus
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}

	if req.Description != nil {
		o.Description = strings.TrimSpace(*req.Description)
	}
	if req.Weight != nil {
		o.Weight = *req.Weight
	}
	if req.PickUpAddress != nil {
		o.PickUpAddress = *req.PickUpAddress
	}
	if req.DropOffAddress != nil {
		o.DropOffAddress = *req.DropOffAddress
	}
	if req.OrderDate != nil {
		o.OrderDate = *req.OrderDate
	}
	if req.Price != nil {
		o.Price = *req.Price
	}
	if req.Status != nil {
		o.Status = *req.Status
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return OrderResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) Search(ctx context.Context, criteria *OrderSearchCriteria) (search.PageResponse[OrderTableInfo], error) {
	if criteria == nil {
		criteria = &OrderSearchCriteria{}
	}
	if criteria.Status != nil && !domain.IsValidOrderStatus(*criteria.Status) {
		return search.PageResponse[OrderTableInfo]{}, ordererrors.ErrInvalidStatus
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[OrderTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search orders failed", zap.Error(err))
		return search.PageResponse[OrderTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}

// MarkDeliveredIfComplete moves the order to DELIVERED once none of its jobs is open.
// It reports whether the status changed; replays of the same event are no-ops.
func (s *service) MarkDeliveredIfComplete(ctx context.Context, orderID int64) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	o, err := qtx.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return false, mapRepositoryError(err)
	}
	if o.Status == domain.OrderStatusDelivered {
		return false, nil
	}

	open, err := qtx.CountOpenJobs(ctx, orderID)
	if err != nil {
		return false, err
	}
	if open > 0 {
		log.Debug("order still has open jobs", zap.Int64("order_id", orderID), zap.Int64("open_jobs", open))
		return false, nil
	}

	o.Status = domain.OrderStatusDelivered
	if err := qtx.Update(ctx, o); err != nil {
		return false, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	log.Info("order delivered", zap.Int64("order_id", orderID), zap.String("order_number", o.OrderNumber))
	return true, nil
}

func mapToResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		Description:    o.Description,
		Weight:         o.Weight,
		PickUpAddress:  o.PickUpAddress,
		DropOffAddress: o.DropOffAddress,
		OrderDate:      o.OrderDate,
		Price:          o.Price,
		Status:         o.Status,
	}
}
