package certificationtype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"go-erp/internal/certificationtype"
	certificationtypeerrors "go-erp/internal/certificationtype/errors"
	certificationtypeMock "go-erp/internal/certificationtype/mock"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/search"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   certificationtype.Service
	repo      *certificationtypeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := certificationtypeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   certificationtype.NewService(db, repo, rdb),
		repo:      repo,
	}
}

func ptr[T any](v T) *T { return &v }

func TestCertificationTypeService_NameIsUniqueIgnoringCase(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	stored := map[string]bool{}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.repo.EXPECT().
		ExistsByName(ctx, gomock.Any(), int64(0)).
		DoAndReturn(func(_ context.Context, name string, _ int64) (bool, error) {
			return stored[strings.ToLower(name)], nil
		}).
		AnyTimes()
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ct *certificationtype.CertificationType) error {
			stored[strings.ToLower(ct.Name)] = true
			ct.ID = int64(len(stored))
			return nil
		}).
		Times(1)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.redisMock.ExpectDel(certificationtype.OptionsKey).SetVal(0)

	resp, err := deps.service.Create(ctx, certificationtype.CertificationTypeRequest{Name: "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	for _, name := range []string{"B", "b", " b "} {
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, certificationtype.CertificationTypeRequest{Name: name})

		assert.ErrorIs(t, err, certificationtypeerrors.ErrCertificationTypeAlreadyExists, name)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeAlreadyExists, appErr.Code)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCertificationTypeService_Create_EmptyName(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Create(context.Background(), certificationtype.CertificationTypeRequest{Name: " "})

	assert.ErrorIs(t, err, certificationtypeerrors.ErrEmptyName)
}

func TestCertificationTypeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and invalidates options", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(2)).Return(&certificationtype.CertificationType{ID: 2, Name: "C"}, nil)
		deps.repo.EXPECT().ExistsByName(ctx, "C1", int64(2)).Return(false, nil)
		deps.repo.EXPECT().Update(ctx, &certificationtype.CertificationType{ID: 2, Name: "C1"}).Return(nil)
		deps.redisMock.ExpectDel(certificationtype.OptionsKey).SetVal(1)

		resp, err := deps.service.Update(ctx, 2, certificationtype.CertificationTypeRequest{Name: "C1"})

		require.NoError(t, err)
		assert.Equal(t, "C1", resp.Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("missing type", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 9, certificationtype.CertificationTypeRequest{Name: "X"})
		assert.ErrorIs(t, err, certificationtypeerrors.ErrCertificationTypeNotFound)
	})
}

func TestCertificationTypeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	opts := []certificationtype.CertificationTypeOption{{Value: 1, Label: "B"}, {Value: 5, Label: "CE"}}
	data, _ := json.Marshal(opts)

	deps.redisMock.ExpectGet(certificationtype.OptionsKey).RedisNil()
	deps.repo.EXPECT().FindAll(ctx).Return([]certificationtype.CertificationType{{ID: 1, Name: "B"}, {ID: 5, Name: "CE"}}, nil)
	deps.redisMock.ExpectSet(certificationtype.OptionsKey, data, certificationtype.OptionsTTL).SetVal("OK")

	got, err := deps.service.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, opts, got)

	deps.redisMock.ExpectGet(certificationtype.OptionsKey).SetVal(string(data))

	got, err = deps.service.GetOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, opts, got)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

// The store holds B, C, D, E and CE; only B contains "b".
func TestCertificationTypeService_SearchThroughRepository(t *testing.T) {
	ctx := context.Background()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	svc := certificationtype.NewService(sqlDB, certificationtype.NewRepository(gdb), nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "certification_types" WHERE LOWER("certification_types"."name") LIKE $1`)).
		WithArgs("%b%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "certification_types" WHERE LOWER("certification_types"."name") LIKE $1 ORDER BY "certification_types"."id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "B"))

	page, err := svc.Search(ctx, &certificationtype.CertificationTypeSearchCriteria{
		CertificationName: ptr("B"),
		PageCriteria:      search.PageCriteria{Page: ptr(0), Size: ptr(10)},
	})

	require.NoError(t, err)
	assert.Equal(t, []certificationtype.CertificationTypeTableInfo{{ID: 1, CertificationName: "B"}}, page.Content)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.CurrentPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationTypeService_SearchRejectsUnknownSort(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Search(context.Background(), &certificationtype.CertificationTypeSearchCriteria{
		PageCriteria: search.PageCriteria{SortBy: ptr("employeeName")},
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeWrongValue, appErr.Code)
}
