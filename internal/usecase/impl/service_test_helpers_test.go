package impl

import (
	"context"
	"io"
	"log/slog"

	"printhub/config"
	"printhub/internal/domain/repository"
	mockRepo "printhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
			UnknownRoleIsUser: true,
		},
		Pricing: &config.PricingConfig{StaplingSurcharge: "0.50"},
		Orders:  &config.OrdersConfig{StatusPolicy: "strict"},
		Shop:    &config.ShopConfig{SingleShopPerOwner: true},
		Storage: &config.StorageConfig{},
	}
}

// expectTx makes txManager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
