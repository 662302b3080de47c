package postgres

import (
	stderrors "errors"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductMapper_RoundTripsOptionalFields(t *testing.T) {
	compare := entity.NewMoney(129.99)
	product := &entity.Product{
		ID:             uuid.New(),
		ShopID:         uuid.New(),
		Name:           "Linen Shirt",
		Price:          entity.NewMoney(99.5),
		CompareAtPrice: &compare,
		Sizes:          []string{"S", "M"},
		IsActive:       true,
	}

	productM := fromProductDomain(product)
	assert.True(t, productM.CompareAtPrice.Valid)
	assert.Equal(t, []string{}, []string(productM.Colors), "nil lists are stored as empty arrays")

	back := toProductDomain(productM)
	require.NotNil(t, back.CompareAtPrice)
	assert.True(t, compare.Equal(*back.CompareAtPrice))
	assert.Equal(t, []string{"S", "M"}, back.Sizes)
	assert.Nil(t, back.Shop)
}

func TestProductMapper_NoCompareAtPrice(t *testing.T) {
	productM := fromProductDomain(&entity.Product{Price: entity.NewMoney(10)})
	assert.False(t, productM.CompareAtPrice.Valid)
	assert.Nil(t, toProductDomain(productM).CompareAtPrice)
}

func TestOrderMapper_KeepsSnapshotsAndShopName(t *testing.T) {
	lat, lng := 25.04, 121.51
	orderM := &model.OrderModel{
		ID:                uuid.New(),
		OrderNumber:       "ORD-20260101-ABC234",
		Status:            "packed",
		Subtotal:          decimal.RequireFromString("40.00"),
		ShippingFee:       decimal.RequireFromString("5.99"),
		TotalAmount:       decimal.RequireFromString("45.99"),
		PaymentMethod:     "cod",
		PaymentStatus:     "pending",
		DeliveryName:      "Mei",
		DeliveryAddress:   "1 Road, Taipei",
		DeliveryLatitude:  &lat,
		DeliveryLongitude: &lng,
		CustomerEmail:     "mei@example.com",
		CreatedAt:         time.Now(),
		Items: []model.OrderItemModel{
			{ID: uuid.New(), ProductName: "Mug", Price: decimal.RequireFromString("20"), Quantity: 2},
		},
		Shop: &model.ShopModel{Name: "Corner Store"},
	}

	order := toOrderDomain(orderM)
	assert.Equal(t, entity.OrderStatusPacked, order.Status)
	assert.Equal(t, "Corner Store", order.ShopName)
	assert.True(t, order.Delivery.HasLocation())
	assert.Equal(t, "mei@example.com", order.Customer.Email)
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("40").Equal(order.Items[0].LineTotal()))

	back := fromOrderDomain(order)
	assert.True(t, orderM.TotalAmount.Equal(back.TotalAmount))
	require.Len(t, back.Items, 1)
	assert.Equal(t, "Mug", back.Items[0].ProductName)
}

func TestUserMapper_NormalisesEmail(t *testing.T) {
	userM := fromUserDomain(&entity.User{Email: "  Ann@Example.COM "})
	assert.Equal(t, "ann@example.com", userM.Email)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.False(t, isNotNullConstraintViolation(assert.AnError))
	assert.True(t, isNotNullConstraintViolation(
		stderrors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`)))
}
