package permission

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	permissionerrors "go-erp/internal/permission/errors"
	"go-erp/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PermissionAllKey = "permissions:all"
	PermissionAllTTL = time.Hour
)

//go:generate mockgen -source=permission_service.go -destination=mock/permission_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)
	GetAll(ctx context.Context) ([]PermissionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("permission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return PermissionResponse{}, permissionerrors.ErrEmptyDescription
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PermissionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.ExistsByDescription(ctx, description)
	if err != nil {
		return PermissionResponse{}, err
	}
	if exists {
		return PermissionResponse{}, permissionerrors.ErrPermissionAlreadyExists
	}

	perm := &Permission{Description: description}
	if err := qtx.Create(ctx, perm); err != nil {
		return PermissionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PermissionResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, PermissionAllKey).Err(); err != nil {
			log.Error("invalidate permission cache failed", zap.String("key", PermissionAllKey), zap.Error(err))
		}
	}

	log.Info("create permission success", zap.Int64("permission_id", perm.ID))
	return mapToResponse(*perm), nil
}

func (s *service) GetAll(ctx context.Context) ([]PermissionResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, PermissionAllKey).Result()
		if err == nil {
			var resp []PermissionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PermissionAllKey, func() (any, error) {
		perms, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]PermissionResponse, len(perms))
		for i, p := range perms {
			resp[i] = mapToResponse(p)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, PermissionAllKey, data, PermissionAllTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load permissions failed", zap.Error(err))
		return nil, err
	}

	return v.([]PermissionResponse), nil
}

func mapToResponse(p Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID, Description: p.Description}
}
