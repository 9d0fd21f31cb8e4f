package impl

import (
	"context"
	"testing"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/errors"
	mockRepo "printhub/internal/mocks/repository"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopFixture struct {
	srv         usecase.ShopUsecase
	txManager   *mockRepo.MockTransactionManager
	shopRepo    *mockRepo.MockShopRepository
	pricingRepo *mockRepo.MockPricingRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func newShopFixture(t *testing.T, singleShopPerOwner bool) *shopFixture {
	t.Helper()

	cfg := newTestConfig(0)
	cfg.Shop.SingleShopPerOwner = singleShopPerOwner

	f := &shopFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		pricingRepo: mockRepo.NewMockPricingRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
	}
	f.srv = NewShopService(ShopServiceParams{
		TxManager:   f.txManager,
		ShopRepo:    f.shopRepo,
		PricingRepo: f.pricingRepo,
		OrderRepo:   f.orderRepo,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestShopService_SetupShop(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	txShopRepo.EXPECT().LockOwner(mock.Anything, owner.ID).Return(nil)
	txShopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(nil, repository.ErrShopNotFound)
	txShopRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Shop) bool {
		return s.OwnerID == owner.ID && s.Name == "Campus Prints" && s.Status == entity.ShopStatusActive
	})).Return(nil)

	shop, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "  Campus Prints ", City: " Leeds"})

	require.NoError(t, err)
	assert.Equal(t, "Campus Prints", shop.Name)
	assert.Equal(t, "Leeds", shop.City)
	assert.NotEqual(t, uuid.Nil, shop.ID)
}

func TestShopService_SetupShop_SecondShopConflicts(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	txShopRepo.EXPECT().LockOwner(mock.Anything, owner.ID).Return(nil)
	txShopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(&entity.Shop{ID: uuid.New(), OwnerID: owner.ID}, nil)

	_, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "Second"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	txShopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShopService_SetupShop_LocksOwnerBeforeLookup(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	var calls []string
	txShopRepo.EXPECT().LockOwner(mock.Anything, owner.ID).
		Run(func(context.Context, uuid.UUID) { calls = append(calls, "lock") }).
		Return(nil)
	txShopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).
		Run(func(context.Context, uuid.UUID) { calls = append(calls, "find") }).
		Return(nil, repository.ErrShopNotFound)
	txShopRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(context.Context, *entity.Shop) { calls = append(calls, "create") }).
		Return(nil)

	_, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "Campus Prints"})

	require.NoError(t, err)
	assert.Equal(t, []string{"lock", "find", "create"}, calls)
}

func TestShopService_SetupShop_LockFailureAborts(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	txShopRepo.EXPECT().LockOwner(mock.Anything, owner.ID).Return(errors.New("lock timeout"))

	_, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "Campus Prints"})

	require.Error(t, err)
	txShopRepo.AssertNotCalled(t, "FindByOwner", mock.Anything, mock.Anything)
	txShopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShopService_SetupShop_CreateConflictSurfaces(t *testing.T) {
	f := newShopFixture(t, false)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	txShopRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domainerrors.ErrConflict.WrapMessage("shop already exists"))

	_, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "Campus Prints"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestShopService_SetupShop_MultipleShopsAllowed(t *testing.T) {
	f := newShopFixture(t, false)
	owner := &entity.Principal{ID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txShopRepo := mockRepo.NewMockShopRepository(t)
	factory.EXPECT().NewShopRepository().Return(txShopRepo)
	expectTx(f.txManager, factory)

	txShopRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := f.srv.SetupShop(context.Background(), owner, usecase.ShopInput{Name: "Second"})

	require.NoError(t, err)
}

func TestShopService_SetupShop_RequiresName(t *testing.T) {
	f := newShopFixture(t, true)

	_, err := f.srv.SetupShop(context.Background(), &entity.Principal{ID: uuid.New()}, usecase.ShopInput{Name: "   "})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShopService_UpdateShop(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}
	shop := &entity.Shop{ID: uuid.New(), OwnerID: owner.ID, Name: "Old", Status: entity.ShopStatusActive}

	f.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
	f.shopRepo.EXPECT().Update(mock.Anything, shop).Return(nil)

	updated, err := f.srv.UpdateShop(context.Background(), owner, usecase.ShopInput{Name: "New", Phone: "0113 496 0000"})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "0113 496 0000", updated.Phone)
	assert.Equal(t, entity.ShopStatusActive, updated.Status)
}

func TestShopService_UpsertPricing(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}
	shop := &entity.Shop{ID: uuid.New(), OwnerID: owner.ID}

	f.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txPricingRepo := mockRepo.NewMockPricingRepository(t)
	factory.EXPECT().NewPricingRepository().Return(txPricingRepo)
	expectTx(f.txManager, factory)

	txPricingRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(e *entity.PriceEntry) bool {
		return e.ShopID == shop.ID && e.PaperSize == entity.PaperSizeA4
	})).Return(nil).Twice()
	txPricingRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return(a4ColorPricing(shop.ID), nil)

	list, err := f.srv.UpsertPricing(context.Background(), owner, []usecase.PriceInput{
		{
			PaperSize: entity.PaperSizeA4, ColorMode: entity.ColorModeColor,
			SingleSidedPrice: decimal.RequireFromString("2.00"), DoubleSidedPrice: decimal.RequireFromString("3.50"),
		},
		{
			PaperSize: entity.PaperSizeA4, ColorMode: entity.ColorModeBlackAndWhite,
			SingleSidedPrice: decimal.RequireFromString("0.10"), DoubleSidedPrice: decimal.RequireFromString("0.15"),
		},
	})

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestShopService_UpsertPricing_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		prices []usecase.PriceInput
	}{
		{name: "empty", prices: nil},
		{name: "negative", prices: []usecase.PriceInput{{
			PaperSize: entity.PaperSizeA4, ColorMode: entity.ColorModeColor,
			SingleSidedPrice: decimal.RequireFromString("-1"), DoubleSidedPrice: decimal.Zero,
		}}},
		{name: "unknown color mode", prices: []usecase.PriceInput{{PaperSize: entity.PaperSizeA4, ColorMode: "sepia"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShopFixture(t, true)

			_, err := f.srv.UpsertPricing(context.Background(), &entity.Principal{ID: uuid.New()}, tt.prices)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestShopService_Dashboard(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}
	shop := &entity.Shop{ID: uuid.New(), OwnerID: owner.ID}
	orders := []*entity.Order{{ID: uuid.New(), ShopID: shop.ID}}

	f.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(shop, nil)
	f.pricingRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return(a4ColorPricing(shop.ID), nil)
	f.orderRepo.EXPECT().ListByShop(mock.Anything, shop.ID).Return(orders, nil)

	dashboard, err := f.srv.Dashboard(context.Background(), owner)

	require.NoError(t, err)
	assert.Equal(t, shop, dashboard.Shop)
	assert.Len(t, dashboard.Pricing, 1)
	assert.Equal(t, orders, dashboard.Orders)
}

func TestShopService_Dashboard_NoShopYet(t *testing.T) {
	f := newShopFixture(t, true)
	owner := &entity.Principal{ID: uuid.New()}

	f.shopRepo.EXPECT().FindByOwner(mock.Anything, owner.ID).Return(nil, repository.ErrShopNotFound)

	dashboard, err := f.srv.Dashboard(context.Background(), owner)

	require.NoError(t, err)
	assert.Nil(t, dashboard.Shop)
	assert.Empty(t, dashboard.Orders)
}

func TestShopService_CountActiveShops(t *testing.T) {
	f := newShopFixture(t, true)

	f.shopRepo.EXPECT().CountActive(mock.Anything).Return(int64(3), nil)

	count, err := f.srv.CountActiveShops(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
