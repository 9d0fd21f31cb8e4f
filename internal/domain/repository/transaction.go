package repository

import "context"

// TransactionManager runs multi-step writes atomically without exposing the database driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories taken from
	// the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the current transaction.
type RepositoryFactory interface {
	NewAuthUserRepository() AuthUserRepository
	NewProfileRepository() ProfileRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewShopRepository() ShopRepository
	NewPricingRepository() PricingRepository
	NewOrderRepository() OrderRepository
}
