package vehicle

import (
	"context"
	"strings"

	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"
	vehicleerrors "go-erp/internal/vehicle/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=vehicle_service.go -destination=mock/vehicle_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error)
	GetByID(ctx context.Context, id int64) (VehicleResponse, error)
	Update(ctx context.Context, id int64, req UpdateVehicleRequest) (VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *VehicleSearchCriteria) (search.PageResponse[VehicleTableInfo], error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("vehicle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vehicle.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateVehicleRequest) (VehicleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	plate := normalizePlate(req.RegistrationPlate)
	if plate == "" {
		return VehicleResponse{}, vehicleerrors.ErrEmptyPlate
	}
	if req.Capacity <= 0 {
		return VehicleResponse{}, vehicleerrors.ErrInvalidCapacity
	}

	exists, err := s.repo.ExistsByPlate(ctx, plate, 0)
	if err != nil {
		return VehicleResponse{}, err
	}
	if exists {
		return VehicleResponse{}, vehicleerrors.ErrVehicleAlreadyExists
	}

	v := &Vehicle{
		RegistrationPlate: plate,
		Brand:             req.Brand,
		Model:             req.Model,
		Capacity:          req.Capacity,
		ProductionYear:    req.ProductionYear,
		Available:         req.Available == nil || *req.Available,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		log.Error("create vehicle failed", zap.Error(err))
		return VehicleResponse{}, mapRepositoryError(err)
	}

	log.Info("create vehicle success", zap.Int64("vehicle_id", v.ID))
	return mapToResponse(*v), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*v), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}

	if req.RegistrationPlate != nil {
		plate := normalizePlate(*req.RegistrationPlate)
		if plate == "" {
			return VehicleResponse{}, vehicleerrors.ErrEmptyPlate
		}
		exists, err := s.repo.ExistsByPlate(ctx, plate, id)
		if err != nil {
			return VehicleResponse{}, err
		}
		if exists {
			return VehicleResponse{}, vehicleerrors.ErrVehicleAlreadyExists
		}
		v.RegistrationPlate = plate
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return VehicleResponse{}, vehicleerrors.ErrInvalidCapacity
		}
		v.Capacity = *req.Capacity
	}
	if req.Brand != nil {
		v.Brand = *req.Brand
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.ProductionYear != nil {
		v.ProductionYear = *req.ProductionYear
	}
	if req.Available != nil {
		v.Available = *req.Available
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return VehicleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*v), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) Search(ctx context.Context, criteria *VehicleSearchCriteria) (search.PageResponse[VehicleTableInfo], error) {
	if criteria == nil {
		criteria = &VehicleSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[VehicleTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search vehicles failed", zap.Error(err))
		return search.PageResponse[VehicleTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}

func normalizePlate(p string) string {
	return strings.ToUpper(strings.TrimSpace(p))
}

func mapToResponse(v Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                v.ID,
		RegistrationPlate: v.RegistrationPlate,
		Brand:             v.Brand,
		Model:             v.Model,
		Capacity:          v.Capacity,
		ProductionYear:    v.ProductionYear,
		Available:         v.Available,
	}
}
