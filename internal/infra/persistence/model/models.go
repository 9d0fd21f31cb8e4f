// Package model holds the GORM persistence models of the PrintHub schema.
package model

// All returns every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&AuthUserModel{},
		&RefreshTokenModel{},
		&ProfileModel{},
		&ShopModel{},
		&PricingModel{},
		&OrderModel{},
	}
}
