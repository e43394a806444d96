package customer

import (
	"context"
	"strings"

	customererrors "go-erp/internal/customer/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"

	"go.uber.org/zap"
)

//go:generate mockgen -source=customer_service.go -destination=mock/customer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (CustomerResponse, error)
	Update(ctx context.Context, id int64, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *CustomerSearchCriteria) (search.PageResponse[CustomerTableInfo], error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("customer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("customer.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CustomerResponse{}, customererrors.ErrEmptyName
	}

	cust := &Customer{
		Name:    name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
	}
	if err := s.repo.Create(ctx, cust); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("create customer failed", zap.Error(err))
		return CustomerResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("create customer success", zap.Int64("customer_id", cust.ID))
	return mapToResponse(*cust), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cust), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (CustomerResponse, error) {
	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return CustomerResponse{}, customererrors.ErrEmptyName
		}
		cust.Name = name
	}
	if req.Email != nil {
		cust.Email = *req.Email
	}
	if req.Phone != nil {
		cust.Phone = *req.Phone
	}
	if req.Address != nil {
		cust.Address = *req.Address
	}
	if req.City != nil {
		cust.City = *req.City
	}

	if err := s.repo.Update(ctx, cust); err != nil {
		return CustomerResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cust), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) Search(ctx context.Context, criteria *CustomerSearchCriteria) (search.PageResponse[CustomerTableInfo], error) {
	if criteria == nil {
		criteria = &CustomerSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[CustomerTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search customers failed", zap.Error(err))
		return search.PageResponse[CustomerTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}

func mapToResponse(c Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		City:    c.City,
	}
}
