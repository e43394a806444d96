package fuel

import (
	"context"

	fuelerrors "go-erp/internal/fuel/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"

	"go.uber.org/zap"
)

//go:generate mockgen -source=fuel_service.go -destination=mock/fuel_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateFuelRequest) (FuelResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *FuelSearchCriteria) (search.PageResponse[FuelTableInfo], error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("fuel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fuel.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateFuelRequest) (FuelResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Liters <= 0 {
		return FuelResponse{}, fuelerrors.ErrInvalidLiters
	}
	if req.DistanceKm < 0 {
		return FuelResponse{}, fuelerrors.ErrInvalidDistance
	}

	ok, err := s.repo.VehicleExists(ctx, req.VehicleID)
	if err != nil {
		return FuelResponse{}, err
	}
	if !ok {
		return FuelResponse{}, fuelerrors.ErrVehicleNotFound
	}
	ok, err = s.repo.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return FuelResponse{}, err
	}
	if !ok {
		return FuelResponse{}, fuelerrors.ErrEmployeeNotFound
	}

	f := &FuelConsumption{
		VehicleID:  req.VehicleID,
		EmployeeID: req.EmployeeID,
		RefuelDate: req.RefuelDate,
		Liters:     req.Liters,
		DistanceKm: req.DistanceKm,
		Cost:       req.Cost,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		log.Error("create fuel record failed", zap.Error(err))
		return FuelResponse{}, err
	}

	log.Info("create fuel record success",
		zap.Int64("fuel_id", f.ID),
		zap.Int64("vehicle_id", f.VehicleID),
	)
	return FuelResponse{
		ID:         f.ID,
		VehicleID:  f.VehicleID,
		EmployeeID: f.EmployeeID,
		RefuelDate: f.RefuelDate,
		Liters:     f.Liters,
		DistanceKm: f.DistanceKm,
		Cost:       f.Cost,
	}, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) Search(ctx context.Context, criteria *FuelSearchCriteria) (search.PageResponse[FuelTableInfo], error) {
	if criteria == nil {
		criteria = &FuelSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[FuelTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search fuel records failed", zap.Error(err))
		return search.PageResponse[FuelTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}
