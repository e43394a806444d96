package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-erp/internal/auth"
	autherrors "go-erp/internal/auth/errors"
	authMock "go-erp/internal/auth/mock"
	"go-erp/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	repo    *authMock.MockRepository
	hasher  *authMock.MockPasswordHasher
	tokens  *auth.TokenManager
	service auth.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	hasher := authMock.NewMockPasswordHasher(ctrl)
	tokens := newTokenManager(t, "test-secret")

	return &serviceDeps{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		service: auth.NewService(repo, hasher, tokens),
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	alice := &auth.Credential{ID: 7, Name: "Alice", Password: "hashed", PermissionID: int64Ptr(1)}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByName(ctx, "alice").Return(alice, nil)
		deps.hasher.EXPECT().Compare("hashed", "p@ss1").Return(nil).Times(1)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{Name: "alice", Password: "p@ss1"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(86400), resp.ExpiresIn)

		p, err := deps.tokens.ParsePrincipal(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Name)
		assert.Equal(t, auth.RoleAdmin, p.Role)
	})

	t.Run("wrong password and unknown name fail identically", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByName(ctx, "alice").Return(alice, nil)
		deps.hasher.EXPECT().Compare("hashed", "nope").Return(bcrypt.ErrMismatchedHashAndPassword).Times(1)

		_, wrongPassErr := deps.service.Login(ctx, auth.LoginRequest{Name: "alice", Password: "nope"})

		deps.repo.EXPECT().GetByName(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
		deps.hasher.EXPECT().Compare(auth.DummyHash, "nope").Return(bcrypt.ErrMismatchedHashAndPassword).Times(1)

		_, unknownErr := deps.service.Login(ctx, auth.LoginRequest{Name: "ghost", Password: "nope"})

		assert.ErrorIs(t, wrongPassErr, autherrors.ErrLoginFailed)
		assert.Equal(t, wrongPassErr, unknownErr)
	})

	t.Run("unknown name fails even if the dummy hash matched", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByName(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)
		deps.hasher.EXPECT().Compare(auth.DummyHash, "x").Return(nil).Times(1)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Name: "ghost", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrLoginFailed)
	})

	t.Run("store failure is not a login failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		dbErr := errors.New("connection reset")
		deps.repo.EXPECT().GetByName(ctx, "alice").Return(nil, dbErr)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Name: "alice", Password: "p@ss1"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, autherrors.ErrLoginFailed)
	})
}

func TestService_Login_WithBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}
	svc := auth.NewService(repo, hasher, newTokenManager(t, "test-secret"))
	ctx := context.Background()

	hashed, err := hasher.Hash("p@ss1")
	require.NoError(t, err)
	assert.NotEqual(t, "p@ss1", hashed)

	repo.EXPECT().GetByName(ctx, "Alice").Return(&auth.Credential{ID: 1, Name: "Alice", Password: hashed, PermissionID: int64Ptr(2)}, nil).Times(2)
	repo.EXPECT().GetByName(ctx, "Nobody").Return(nil, gorm.ErrRecordNotFound)

	resp, err := svc.Login(ctx, auth.LoginRequest{Name: "Alice", Password: "p@ss1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, wrongErr := svc.Login(ctx, auth.LoginRequest{Name: "Alice", Password: "wrong"})
	_, unknownErr := svc.Login(ctx, auth.LoginRequest{Name: "Nobody", Password: "p@ss1"})
	assert.ErrorIs(t, wrongErr, autherrors.ErrLoginFailed)
	assert.Equal(t, wrongErr, unknownErr)
}

func TestService_Me(t *testing.T) {
	deps := setupServiceTest(t)

	t.Run("principal on context", func(t *testing.T) {
		ctx := contextutil.WithPrincipal(context.Background(), contextutil.Principal{
			EmployeeID:   5,
			Name:         "Bob",
			PermissionID: int64Ptr(2),
			Role:         auth.RoleUser,
		})

		resp, err := deps.service.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.EmployeeID)
		assert.Equal(t, "USER", resp.Role)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := deps.service.Me(context.Background())
		assert.ErrorIs(t, err, autherrors.ErrUnauthenticated)
	})
}
