package customer_test

import (
	"context"
	"testing"

	"go-erp/internal/customer"
	customererrors "go-erp/internal/customer/errors"
	customerMock "go-erp/internal/customer/mock"
	"go-erp/internal/shared/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (customer.Service, *customerMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := customerMock.NewMockRepository(ctrl)
	return customer.NewService(repo), repo
}

func ptr[T any](v T) *T { return &v }

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *customer.Customer) error {
				assert.Equal(t, "Acme Freight", c.Name)
				c.ID = 3
				return nil
			})

		resp, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: " Acme Freight ", City: "Zagreb"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.Equal(t, "Zagreb", resp.City)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Create(ctx, customer.CreateCustomerRequest{Name: " "})
		assert.ErrorIs(t, err, customererrors.ErrEmptyName)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByID(ctx, int64(3)).Return(&customer.Customer{ID: 3, Name: "Acme", City: "Split", Email: "a@acme.io"}, nil)
		repo.EXPECT().Update(ctx, &customer.Customer{ID: 3, Name: "Acme", City: "Rijeka", Email: "a@acme.io"}).Return(nil)

		resp, err := svc.Update(ctx, 3, customer.UpdateCustomerRequest{City: ptr("Rijeka")})

		require.NoError(t, err)
		assert.Equal(t, "Rijeka", resp.City)
		assert.Equal(t, "a@acme.io", resp.Email)
	})

	t.Run("missing customer", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().FindByID(ctx, int64(4)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, 4, customer.UpdateCustomerRequest{})
		assert.ErrorIs(t, err, customererrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_Search(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)

	repo.EXPECT().
		Search(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec *search.Spec, p search.Pageable) (search.Page[customer.Customer], error) {
			assert.Len(t, spec.Conditions(), 2)
			assert.Equal(t, "customerName", p.SortBy)
			assert.Equal(t, search.Desc, p.Direction)
			return search.Page[customer.Customer]{
				Content:       []customer.Customer{{ID: 9, Name: "Zeta", City: "Pula"}},
				TotalElements: 21,
				Page:          p.Page,
				Size:          p.Size,
			}, nil
		})

	resp, err := svc.Search(ctx, &customer.CustomerSearchCriteria{
		Name: ptr("z"),
		City: ptr("pu"),
		PageCriteria: search.PageCriteria{
			SortBy:        ptr("customerName"),
			SortDirection: ptr("desc"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []customer.CustomerTableInfo{{ID: 9, CustomerName: "Zeta", City: "Pula"}}, resp.Content)
	assert.Equal(t, 2, resp.TotalPages)
}
