package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	authMock "go-erp/internal/auth/mock"
	"go-erp/internal/employee"
	employeeerrors "go-erp/internal/employee/errors"
	employeeMock "go-erp/internal/employee/mock"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/search"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	hasher  *authMock.MockPasswordHasher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := employeeMock.NewMockRepository(ctrl)
	hasher := authMock.NewMockPasswordHasher(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: employee.NewService(db, repo, hasher),
		repo:    repo,
		hasher:  hasher,
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

func ptr[T any](v T) *T { return &v }

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes the password once", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "Alice", int64(0)).Return(false, nil)
		deps.hasher.EXPECT().Hash("p@ss1").Return("hashed-p@ss1", nil).Times(1)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Alice", e.Name)
				assert.Equal(t, "hashed-p@ss1", e.Password)
				assert.Equal(t, int64(2), e.PermissionID)
				e.ID = 11
				return nil
			})

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: " Alice ", Password: "p@ss1", PermissionID: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, "USER", resp.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rule violations are wrong values and touch nothing", func(t *testing.T) {
		tests := []struct {
			name string
			req  employee.CreateEmployeeRequest
			want error
		}{
			{"empty name", employee.CreateEmployeeRequest{Name: "  ", Password: "x", PermissionID: 1}, employeeerrors.ErrEmptyName},
			{"empty password", employee.CreateEmployeeRequest{Name: "Bob", PermissionID: 1}, employeeerrors.ErrEmptyPassword},
			{"permission zero", employee.CreateEmployeeRequest{Name: "Bob", Password: "x"}, employeeerrors.ErrInvalidPermission},
			{"permission four", employee.CreateEmployeeRequest{Name: "Bob", Password: "x", PermissionID: 4}, employeeerrors.ErrInvalidPermission},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				deps := setupServiceTest(t)

				_, err := deps.service.Create(ctx, tt.req)

				assert.ErrorIs(t, err, tt.want)
				assertCode(t, err, apperror.CodeWrongValue)
				assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
			})
		}
	})

	t.Run("duplicate name in any case", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByName(ctx, "ALICE", int64(0)).Return(true, nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{Name: "ALICE", Password: "x", PermissionID: 1})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assertCode(t, err, apperror.CodeAlreadyExists)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	stored := func() *employee.Employee {
		return &employee.Employee{ID: 3, Name: "Carl", Password: "old-hash", PermissionID: 3}
	}

	t.Run("nil fields are untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(stored(), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "Carl", e.Name)
				assert.Equal(t, "old-hash", e.Password)
				assert.Equal(t, int64(1), e.PermissionID)
				return nil
			})

		resp, err := deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{PermissionID: ptr(int64(1))})

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.Role)
	})

	t.Run("new password is hashed once", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(stored(), nil)
		deps.hasher.EXPECT().Hash("new").Return("new-hash", nil).Times(1)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "new-hash", e.Password)
				return nil
			})

		_, err := deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{Password: ptr("new")})
		require.NoError(t, err)
	})

	t.Run("renaming to a taken name", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(stored(), nil)
		deps.repo.EXPECT().ExistsByName(ctx, "alice", int64(3)).Return(true, nil)

		_, err := deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{Name: ptr("alice")})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("case-only rename skips the uniqueness check", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(stored(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{Name: ptr("CARL")})
		require.NoError(t, err)
		assert.Equal(t, "CARL", resp.Name)
	})

	t.Run("missing employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("empty password and bad permission", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{Password: ptr("")})
		assert.ErrorIs(t, err, employeeerrors.ErrEmptyPassword)

		_, err = deps.service.Update(ctx, 3, employee.UpdateEmployeeRequest{PermissionID: ptr(int64(7))})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPermission)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().Delete(ctx, int64(4)).Return(nil)
	assert.NoError(t, deps.service.Delete(ctx, 4))

	deps.repo.EXPECT().Delete(ctx, int64(5)).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, 5), employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Search(t *testing.T) {
	ctx := context.Background()
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)

	t.Run("nil criteria uses defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Search(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec *search.Spec, p search.Pageable) (search.Page[employee.EmployeeRow], error) {
				assert.True(t, spec.IsEmpty())
				assert.Equal(t, 0, p.Page)
				assert.Equal(t, 20, p.Size)
				assert.Equal(t, "id", p.SortBy)
				assert.Equal(t, search.Asc, p.Direction)
				return search.Page[employee.EmployeeRow]{Content: []employee.EmployeeRow{}, Page: p.Page, Size: p.Size}, nil
			})

		resp, err := deps.service.Search(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, resp.Content)
		assert.Equal(t, int64(0), resp.TotalElements)
	})

	t.Run("filters become conditions", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Search(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec *search.Spec, p search.Pageable) (search.Page[employee.EmployeeRow], error) {
				assert.Len(t, spec.Conditions(), 3)
				var names []string
				for _, j := range spec.Joins() {
					names = append(names, j.Name)
				}
				assert.Equal(t, []string{"jobs"}, names)
				return search.Page[employee.EmployeeRow]{}, nil
			})

		_, err := deps.service.Search(ctx, &employee.EmployeeSearchCriteria{
			Name:              ptr("ali"),
			CertificationName: ptr(""),
			LastJobDateFrom:   &jan,
			PermissionID:      ptr(int64(2)),
		})
		require.NoError(t, err)
	})

	t.Run("last job date sort keeps employees without jobs at the end", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			Search(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *search.Spec, p search.Pageable) (search.Page[employee.EmployeeRow], error) {
				order, ok := p.OrderBy().Expression.(clause.Expr)
				require.True(t, ok)
				assert.Equal(t, "? DESC NULLS LAST,? DESC", order.SQL)
				assert.Equal(t, []any{search.Col("jobs", "drop_off_date"), search.Col("employees", "id")}, order.Vars)
				return search.Page[employee.EmployeeRow]{}, nil
			})

		_, err := deps.service.Search(ctx, &employee.EmployeeSearchCriteria{
			PageCriteria: search.PageCriteria{SortBy: ptr("lastJobDate"), SortDirection: ptr("desc")},
		})
		require.NoError(t, err)
	})

	t.Run("unknown sort key is rejected before querying", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Search(ctx, &employee.EmployeeSearchCriteria{
			PageCriteria: search.PageCriteria{SortBy: ptr("password")},
		})

		assertCode(t, err, apperror.CodeWrongValue)
	})

	t.Run("fanout rows collapse per employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		rows := []employee.EmployeeRow{
			{ID: 1, Name: "Ann", Permission: ptr("ADMIN"), CertificationName: ptr("B"), LastJobDate: &jan},
			{ID: 1, Name: "Ann", Permission: ptr("ADMIN"), CertificationName: ptr("CE"), LastJobDate: &feb},
			{ID: 1, Name: "Ann", Permission: ptr("ADMIN"), CertificationName: ptr("B"), LastJobDate: nil},
			{ID: 2, Name: "Ben", Permission: ptr("DRIVER")},
			{ID: 3, Name: "Ann", Permission: ptr("ADMIN"), CertificationName: ptr("C")},
		}
		deps.repo.EXPECT().
			Search(ctx, gomock.Any(), gomock.Any()).
			Return(search.Page[employee.EmployeeRow]{Content: rows, TotalElements: 5, Page: 0, Size: 20}, nil)

		resp, err := deps.service.Search(ctx, &employee.EmployeeSearchCriteria{})
		require.NoError(t, err)

		require.Len(t, resp.Content, 3)

		ann := resp.Content[0]
		assert.Equal(t, int64(1), ann.ID)
		assert.Equal(t, "B, CE", ann.CertificationNames)
		require.NotNil(t, ann.LastJobDate)
		assert.True(t, feb.Equal(*ann.LastJobDate))

		ben := resp.Content[1]
		assert.Equal(t, "", ben.CertificationNames)
		assert.Nil(t, ben.LastJobDate)

		namesake := resp.Content[2]
		assert.Equal(t, int64(3), namesake.ID)
		assert.Equal(t, "C", namesake.CertificationNames)

		assert.Equal(t, int64(5), resp.TotalElements)
		assert.Equal(t, 1, resp.TotalPages)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Search(ctx, gomock.Any(), gomock.Any()).Return(search.Page[employee.EmployeeRow]{}, errors.New("boom"))

		_, err := deps.service.Search(ctx, nil)
		assert.EqualError(t, err, "boom")
	})
}
