package auth

import (
	"context"
	"errors"

	autherrors "go-erp/internal/auth/errors"
	"go-erp/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context) (MeResponse, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	tokens *TokenManager
	logger *zap.Logger
}

func NewService(repo Repository, hasher PasswordHasher, tokens *TokenManager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, hasher: hasher, tokens: tokens, logger: l}
}

// Login runs the hasher exactly once whether or not the name exists, and fails with the
// same error for both cases.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cred, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	hash := dummyHash
	if cred != nil {
		hash = cred.Password
	}
	if cmpErr := s.hasher.Compare(hash, req.Password); cmpErr != nil || cred == nil {
		log.Info("login failed", zap.String("name", req.Name))
		return LoginResponse{}, autherrors.ErrLoginFailed
	}

	token, err := s.tokens.Issue(cred.ID, cred.Name, cred.PermissionID)
	if err != nil {
		return LoginResponse{}, err
	}

	log.Info("login succeeded", zap.Int64("employee_id", cred.ID))
	return LoginResponse{Token: token, ExpiresIn: int64(s.tokens.TTL().Seconds())}, nil
}

func (s *service) Me(ctx context.Context) (MeResponse, error) {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok {
		return MeResponse{}, autherrors.ErrUnauthenticated
	}
	return MeResponse{
		EmployeeID:   p.EmployeeID,
		Name:         p.Name,
		PermissionID: p.PermissionID,
		Role:         p.Role,
	}, nil
}
