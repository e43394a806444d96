package certification_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-erp/internal/certification"
	certificationerrors "go-erp/internal/certification/errors"
	certificationMock "go-erp/internal/certification/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service certification.Service
	repo    *certificationMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := certificationMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: certification.NewService(db, repo),
		repo:    repo,
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

func TestCertificationService_Create(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	req := certification.CreateCertificationRequest{
		EmployeeID:          7,
		CertificationTypeID: 2,
		IssuedDate:          issued,
		ExpiryDate:          issued.AddDate(5, 0, 0),
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, int64(7)).Return(true, nil)
		deps.repo.EXPECT().TypeExists(ctx, int64(2)).Return(true, nil)
		deps.repo.EXPECT().ExistsForPair(ctx, int64(7), int64(2)).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *certification.Certification) error {
				c.ID = 30
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(30), resp.ID)
		assert.Equal(t, req.ExpiryDate, resp.ExpiryDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("expiry before issue", func(t *testing.T) {
		deps := setupServiceTest(t)
		bad := req
		bad.ExpiryDate = issued.AddDate(0, 0, -1)

		_, err := deps.service.Create(ctx, bad)
		assert.ErrorIs(t, err, certificationerrors.ErrExpiryBeforeIssue)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, int64(7)).Return(false, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, certificationerrors.ErrEmployeeNotFound)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, int64(7)).Return(true, nil)
		deps.repo.EXPECT().TypeExists(ctx, int64(2)).Return(false, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, certificationerrors.ErrCertificationTypeNotFound)
	})

	t.Run("pair already certified", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, int64(7)).Return(true, nil)
		deps.repo.EXPECT().TypeExists(ctx, int64(2)).Return(true, nil)
		deps.repo.EXPECT().ExistsForPair(ctx, int64(7), int64(2)).Return(true, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, certificationerrors.ErrCertificationAlreadyExists)
	})
}

func TestCertificationService_GetByEmployeeAndDelete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindByEmployee(ctx, int64(7)).Return([]certification.CertificationView{
		{Certification: certification.Certification{ID: 1, EmployeeID: 7, CertificationTypeID: 2}, CertificationName: "CE"},
	}, nil)

	resp, err := deps.service.GetByEmployee(ctx, 7)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "CE", resp[0].CertificationName)

	deps.repo.EXPECT().Delete(ctx, int64(1)).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, 1), certificationerrors.ErrCertificationNotFound)
}
