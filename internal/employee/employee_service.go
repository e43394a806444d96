package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-erp/internal/auth"
	employeeerrors "go-erp/internal/employee/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *EmployeeSearchCriteria) (search.PageResponse[EmployeeTableInfo], error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	hasher auth.PasswordHasher
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, hasher auth.PasswordHasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, hasher: hasher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)

	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyName
	}
	if req.Password == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyPassword
	}
	if !auth.IsValidPermission(req.PermissionID) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPermission
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.ExistsByName(ctx, name, 0)
	if err != nil {
		log.Error("create employee uniqueness check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		Name:         name,
		Password:     hashed,
		PermissionID: req.PermissionID,
	}
	if err := qtx.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.Int64("employee_id", empl.ID))
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.PermissionID != nil && !auth.IsValidPermission(*req.PermissionID) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidPermission
	}
	if req.Password != nil && *req.Password == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmptyPassword
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return EmployeeResponse{}, employeeerrors.ErrEmptyName
		}
		if !strings.EqualFold(name, empl.Name) {
			exists, err := qtx.ExistsByName(ctx, name, id)
			if err != nil {
				log.Error("update employee uniqueness check failed", zap.Error(err))
				return EmployeeResponse{}, err
			}
			if exists {
				return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			}
		}
		empl.Name = name
	}
	if req.PermissionID != nil {
		empl.PermissionID = *req.PermissionID
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			log.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.Password = hashed
	}

	if err := qtx.Update(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.Int64("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	log.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

// Search aggregates within the fetched page only, so a page can hold fewer distinct
// employees than its size. The totals count joined rows, not employees.
func (s *service) Search(ctx context.Context, criteria *EmployeeSearchCriteria) (search.PageResponse[EmployeeTableInfo], error) {
	if criteria == nil {
		criteria = &EmployeeSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[EmployeeTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search employees failed", zap.Error(err))
		return search.PageResponse[EmployeeTableInfo]{}, err
	}

	return search.NewPageResponse(search.Page[EmployeeTableInfo]{
		Content:       aggregateRows(page.Content),
		TotalElements: page.TotalElements,
		Page:          page.Page,
		Size:          page.Size,
	}), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID,
		Name:         empl.Name,
		PermissionID: empl.PermissionID,
		Role:         auth.RoleForPermission(&empl.PermissionID),
		CreatedAt:    empl.CreatedAt,
		UpdatedAt:    empl.UpdatedAt,
	}
}
