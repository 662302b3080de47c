package model

// All lists every persisted model in dependency order, for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&UserRoleModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ShopModel{},
		&ProductModel{},
		&CartItemModel{},
		&AddressModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
