package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		held     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleShopOwner, true},
		{RoleAdmin, RoleCustomer, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleShopOwner, RoleShopOwner, true},
		{RoleShopOwner, RoleAdmin, false},
		{RoleShopOwner, RoleCustomer, false},
		{RoleCustomer, RoleShopOwner, false},
		{RoleCustomer, RoleCustomer, true},
	}

	for _, tt := range tests {
		t.Run(tt.held.String()+"->"+tt.required.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.held.Satisfies(tt.required))
		})
	}
}

func TestRole_IsSelfAssignable(t *testing.T) {
	assert.True(t, RoleCustomer.IsSelfAssignable())
	assert.True(t, RoleShopOwner.IsSelfAssignable())
	assert.False(t, RoleAdmin.IsSelfAssignable())
	assert.False(t, Role("guest").IsValid())
}

func TestAddress_Formatted(t *testing.T) {
	a := &Address{
		AddressLine1: "12 Main St",
		AddressLine2: " ",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "US",
	}

	assert.Equal(t, "12 Main St, Springfield, 12345, US", a.Formatted())
}
