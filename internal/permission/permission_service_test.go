package permission_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"go-erp/internal/permission"
	permissionerrors "go-erp/internal/permission/errors"
	permissionMock "go-erp/internal/permission/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   permission.Service
	repo      *permissionMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := permissionMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   permission.NewService(db, repo, rdb),
		repo:      repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestPermissionService_GetAll(t *testing.T) {
	ctx := context.Background()
	all := []permission.PermissionResponse{
		{ID: 1, Description: "ADMIN"},
		{ID: 2, Description: "USER"},
		{ID: 3, Description: "DRIVER"},
	}

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		data, _ := json.Marshal(all)

		deps.redisMock.ExpectGet(permission.PermissionAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return([]permission.Permission{
			{ID: 1, Description: "ADMIN"},
			{ID: 2, Description: "USER"},
			{ID: 3, Description: "DRIVER"},
		}, nil)
		deps.redisMock.ExpectSet(permission.PermissionAllKey, data, permission.PermissionAllTTL).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, all, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		data, _ := json.Marshal(all)

		deps.redisMock.ExpectGet(permission.PermissionAllKey).SetVal(string(data))

		resp, err := deps.service.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, all, resp)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(permission.PermissionAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)
		assert.EqualError(t, err, "db down")
	})
}

func TestPermissionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByDescription(ctx, "AUDITOR").Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *permission.Permission) error {
				p.ID = 4
				return nil
			})
		deps.redisMock.ExpectDel(permission.PermissionAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, permission.CreatePermissionRequest{Description: "AUDITOR"})

		require.NoError(t, err)
		assert.Equal(t, permission.PermissionResponse{ID: 4, Description: "AUDITOR"}, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate description", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByDescription(ctx, "admin").Return(true, nil)

		_, err := deps.service.Create(ctx, permission.CreatePermissionRequest{Description: "admin"})
		assert.ErrorIs(t, err, permissionerrors.ErrPermissionAlreadyExists)
	})

	t.Run("blank description", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, permission.CreatePermissionRequest{Description: "   "})
		assert.ErrorIs(t, err, permissionerrors.ErrEmptyDescription)
	})
}
