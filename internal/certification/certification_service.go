package certification

import (
	"context"
	"database/sql"

	certificationerrors "go-erp/internal/certification/errors"
	"go-erp/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=certification_service.go -destination=mock/certification_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCertificationRequest) (CertificationResponse, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]CertificationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("certification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certification.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCertificationRequest) (CertificationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.ExpiryDate.Before(req.IssuedDate) {
		return CertificationResponse{}, certificationerrors.ErrExpiryBeforeIssue
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CertificationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return CertificationResponse{}, err
	}
	if !ok {
		return CertificationResponse{}, certificationerrors.ErrEmployeeNotFound
	}

	ok, err = qtx.TypeExists(ctx, req.CertificationTypeID)
	if err != nil {
		return CertificationResponse{}, err
	}
	if !ok {
		return CertificationResponse{}, certificationerrors.ErrCertificationTypeNotFound
	}

	taken, err := qtx.ExistsForPair(ctx, req.EmployeeID, req.CertificationTypeID)
	if err != nil {
		return CertificationResponse{}, err
	}
	if taken {
		return CertificationResponse{}, certificationerrors.ErrCertificationAlreadyExists
	}

	cert := &Certification{
		EmployeeID:          req.EmployeeID,
		CertificationTypeID: req.CertificationTypeID,
		IssuedDate:          req.IssuedDate,
		ExpiryDate:          req.ExpiryDate,
	}
	if err := qtx.Create(ctx, cert); err != nil {
		log.Error("create certification persist failed", zap.Error(err))
		return CertificationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CertificationResponse{}, err
	}

	log.Info("create certification success",
		zap.Int64("certification_id", cert.ID),
		zap.Int64("employee_id", cert.EmployeeID),
	)
	return mapToResponse(CertificationView{Certification: *cert}), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID int64) ([]CertificationResponse, error) {
	views, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]CertificationResponse, len(views))
	for i, v := range views {
		resp[i] = mapToResponse(v)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(v CertificationView) CertificationResponse {
	return CertificationResponse{
		ID:                  v.ID,
		EmployeeID:          v.EmployeeID,
		CertificationTypeID: v.CertificationTypeID,
		CertificationName:   v.CertificationName,
		IssuedDate:          v.IssuedDate,
		ExpiryDate:          v.ExpiryDate,
	}
}
