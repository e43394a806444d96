package certificationtype

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	certificationtypeerrors "go-erp/internal/certificationtype/errors"
	"go-erp/internal/shared/contextutil"
	"go-erp/internal/shared/search"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OptionsKey = "certification_types:options"
	OptionsTTL = time.Hour
)

//go:generate mockgen -source=certification_type_service.go -destination=mock/certification_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CertificationTypeRequest) (CertificationTypeResponse, error)
	GetByID(ctx context.Context, id int64) (CertificationTypeResponse, error)
	GetOptions(ctx context.Context) ([]CertificationTypeOption, error)
	Update(ctx context.Context, id int64, req CertificationTypeRequest) (CertificationTypeResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, criteria *CertificationTypeSearchCriteria) (search.PageResponse[CertificationTypeTableInfo], error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("certificationtype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificationtype.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CertificationTypeRequest) (CertificationTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CertificationTypeResponse{}, certificationtypeerrors.ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CertificationTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.ExistsByName(ctx, name, 0)
	if err != nil {
		return CertificationTypeResponse{}, err
	}
	if exists {
		return CertificationTypeResponse{}, certificationtypeerrors.ErrCertificationTypeAlreadyExists
	}

	ct := &CertificationType{Name: name}
	if err := qtx.Create(ctx, ct); err != nil {
		return CertificationTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CertificationTypeResponse{}, err
	}

	s.invalidateOptions(ctx)
	log.Info("create certification type success", zap.Int64("certification_type_id", ct.ID))
	return mapToResponse(*ct), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (CertificationTypeResponse, error) {
	ct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CertificationTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ct), nil
}

func (s *service) GetOptions(ctx context.Context) ([]CertificationTypeOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, OptionsKey).Result()
		if err == nil {
			var opts []CertificationTypeOption
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsKey, func() (any, error) {
		cts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		opts := make([]CertificationTypeOption, len(cts))
		for i, ct := range cts {
			opts[i] = CertificationTypeOption{Value: ct.ID, Label: ct.Name}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, OptionsKey, data, OptionsTTL)
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]CertificationTypeOption), nil
}

func (s *service) Update(ctx context.Context, id int64, req CertificationTypeRequest) (CertificationTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CertificationTypeResponse{}, certificationtypeerrors.ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CertificationTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ct, err := qtx.FindByID(ctx, id)
	if err != nil {
		return CertificationTypeResponse{}, mapRepositoryError(err)
	}

	exists, err := qtx.ExistsByName(ctx, name, id)
	if err != nil {
		return CertificationTypeResponse{}, err
	}
	if exists {
		return CertificationTypeResponse{}, certificationtypeerrors.ErrCertificationTypeAlreadyExists
	}

	ct.Name = name
	if err := qtx.Update(ctx, ct); err != nil {
		return CertificationTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CertificationTypeResponse{}, err
	}

	s.invalidateOptions(ctx)
	log.Info("update certification type success", zap.Int64("certification_type_id", id))
	return mapToResponse(*ct), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateOptions(ctx)
	return nil
}

func (s *service) Search(ctx context.Context, criteria *CertificationTypeSearchCriteria) (search.PageResponse[CertificationTypeTableInfo], error) {
	if criteria == nil {
		criteria = &CertificationTypeSearchCriteria{}
	}

	pageable, err := sortTable.Resolve(criteria.PageCriteria)
	if err != nil {
		return search.PageResponse[CertificationTypeTableInfo]{}, err
	}

	page, err := s.repo.Search(ctx, buildSpec(*criteria), pageable)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("search certification types failed", zap.Error(err))
		return search.PageResponse[CertificationTypeTableInfo]{}, err
	}

	return search.NewPageResponse(search.MapPage(page, toTableInfo)), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsKey).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("invalidate certification type options failed", zap.Error(err))
	}
}

func mapToResponse(ct CertificationType) CertificationTypeResponse {
	return CertificationTypeResponse{ID: ct.ID, Name: ct.Name}
}
