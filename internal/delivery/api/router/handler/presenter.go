package handler

import (
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/pricing"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is an account with the role resolved for this request.
type ProfileResponse struct {
	User UserResponse `json:"user"`
	Role entity.Role  `json:"role"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	Role         entity.Role  `json:"role"`
}

// ShopResponse is the shape of a storefront.
type ShopResponse struct {
	ID           uuid.UUID        `json:"id"`
	OwnerID      uuid.UUID        `json:"owner_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	LogoURL      string           `json:"logo_url,omitempty"`
	BannerURL    string           `json:"banner_url,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty"`
	Address      string           `json:"address,omitempty"`
	Latitude     *float64         `json:"latitude,omitempty"`
	Longitude    *float64         `json:"longitude,omitempty"`
	IsActive     bool             `json:"is_active"`
	Approved     bool             `json:"approved"`
	State        entity.ShopState `json:"state"`
	Rating       float64          `json:"rating"`
	TotalReviews int              `json:"total_reviews"`
	CreatedAt    time.Time        `json:"created_at"`
}

// AdminShopResponse adds the owner's contact profile for the admin listing.
type AdminShopResponse struct {
	ShopResponse
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
	OwnerPhone string `json:"owner_phone,omitempty"`
}

// ProductResponse is the shape of a catalog item.
type ProductResponse struct {
	ID              uuid.UUID     `json:"id"`
	ShopID          uuid.UUID     `json:"shop_id"`
	ShopName        string        `json:"shop_name,omitempty"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Price           entity.Money  `json:"price"`
	CompareAtPrice  *entity.Money `json:"compare_at_price,omitempty"`
	DiscountPercent int           `json:"discount_percent,omitempty"`
	Category        string        `json:"category,omitempty"`
	ImageURL        string        `json:"image_url,omitempty"`
	Images          []string      `json:"images"`
	Sizes           []string      `json:"sizes"`
	Colors          []string      `json:"colors"`
	StockQuantity   int           `json:"stock_quantity"`
	IsActive        bool          `json:"is_active"`
	Rating          float64       `json:"rating"`
	TotalReviews    int           `json:"total_reviews"`
	CreatedAt       time.Time     `json:"created_at"`
}

// CartLineResponse is one cart line joined with its live product.
type CartLineResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"product_id"`
	Size      string           `json:"size,omitempty"`
	Color     string           `json:"color,omitempty"`
	Quantity  int              `json:"quantity"`
	Available bool             `json:"available"`
	LineTotal entity.Money     `json:"line_total"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// TotalsResponse is the priced summary of a set of lines.
type TotalsResponse struct {
	Subtotal    entity.Money `json:"subtotal"`
	ShippingFee entity.Money `json:"shipping_fee"`
	Total       entity.Money `json:"total"`
	ItemCount   int          `json:"item_count"`
}

// CartResponse is the cart view.
type CartResponse struct {
	Lines  []CartLineResponse `json:"lines"`
	Totals TotalsResponse     `json:"totals"`
}

// OrderItemResponse is a frozen order line.
type OrderItemResponse struct {
	ProductID    uuid.UUID    `json:"product_id"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image,omitempty"`
	UnitPrice    entity.Money `json:"unit_price"`
	Quantity     int          `json:"quantity"`
	Size         string       `json:"size,omitempty"`
	Color        string       `json:"color,omitempty"`
	LineTotal    entity.Money `json:"line_total"`
}

// DeliveryResponse is the delivery address captured at checkout.
type DeliveryResponse struct {
	RecipientName string   `json:"recipient_name"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// CustomerResponse is the purchaser contact captured at checkout.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderResponse is the shape of an order.
type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	OrderNumber   string               `json:"order_number"`
	UserID        uuid.UUID            `json:"user_id"`
	ShopID        uuid.UUID            `json:"shop_id"`
	ShopName      string               `json:"shop_name,omitempty"`
	Status        entity.OrderStatus   `json:"status"`
	Subtotal      entity.Money         `json:"subtotal"`
	ShippingFee   entity.Money         `json:"shipping_fee"`
	Total         entity.Money         `json:"total"`
	PaymentMethod entity.PaymentMethod `json:"payment_method"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	Delivery      DeliveryResponse     `json:"delivery"`
	Customer      CustomerResponse     `json:"customer"`
	Notes         string               `json:"notes,omitempty"`
	Items         []OrderItemResponse  `json:"items"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// AddressResponse is an address book entry.
type AddressResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShopStatsResponse holds the dashboard figures.
type ShopStatsResponse struct {
	ProductCount       int64        `json:"product_count"`
	ActiveProductCount int64        `json:"active_product_count"`
	OrderCount         int64        `json:"order_count"`
	OngoingOrderCount  int64        `json:"ongoing_order_count"`
	DeliveredRevenue   entity.Money `json:"delivered_revenue"`
}

// DashboardResponse is the owner landing view. Shop is null until the owner creates one.
type DashboardResponse struct {
	Shop         *ShopResponse      `json:"shop"`
	Stats        *ShopStatsResponse `json:"stats,omitempty"`
	RecentOrders []OrderResponse    `json:"recent_orders"`
}

// RevenueTransactionResponse is a delivered order in the revenue report.
type RevenueTransactionResponse struct {
	OrderID      uuid.UUID    `json:"order_id"`
	OrderNumber  string       `json:"order_number"`
	Amount       entity.Money `json:"amount"`
	CustomerName string       `json:"customer_name"`
	CreatedAt    time.Time    `json:"created_at"`
}

// RevenueResponse is the shop revenue report.
type RevenueResponse struct {
	Today              entity.Money                 `json:"today"`
	ThisMonth          entity.Money                 `json:"this_month"`
	Total              entity.Money                 `json:"total"`
	DeliveredOrders    int                          `json:"delivered_orders"`
	TotalOrders        int                          `json:"total_orders"`
	RecentTransactions []RevenueTransactionResponse `json:"recent_transactions"`
}

// RoleAssignmentResponse is the result of a role change.
type RoleAssignmentResponse struct {
	UserID    uuid.UUID   `json:"user_id"`
	Role      entity.Role `json:"role"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func toShopResponse(s *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Description:  s.Description,
		LogoURL:      s.LogoURL,
		BannerURL:    s.BannerURL,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		IsActive:     s.IsActive,
		Approved:     s.Approved,
		State:        s.State(),
		Rating:       s.Rating,
		TotalReviews: s.TotalReviews,
		CreatedAt:    s.CreatedAt,
	}
}

func toShopResponses(shops []*entity.Shop) []ShopResponse {
	return lo.Map(shops, func(s *entity.Shop, _ int) ShopResponse {
		return toShopResponse(s)
	})
}

func toAdminShopResponses(shops []*entity.ShopWithOwner) []AdminShopResponse {
	return lo.Map(shops, func(s *entity.ShopWithOwner, _ int) AdminShopResponse {
		return AdminShopResponse{
			ShopResponse: toShopResponse(&s.Shop),
			OwnerName:    s.OwnerName,
			OwnerEmail:   s.OwnerEmail,
			OwnerPhone:   s.OwnerPhone,
		}
	})
}

func toProductResponse(p *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:              p.ID,
		ShopID:          p.ShopID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CompareAtPrice:  p.CompareAtPrice,
		DiscountPercent: p.DiscountPercent(),
		Category:        p.Category,
		ImageURL:        p.ImageURL,
		Images:          lo.CoalesceSliceOrEmpty(p.Images),
		Sizes:           lo.CoalesceSliceOrEmpty(p.Sizes),
		Colors:          lo.CoalesceSliceOrEmpty(p.Colors),
		StockQuantity:   p.StockQuantity,
		IsActive:        p.IsActive,
		Rating:          p.Rating,
		TotalReviews:    p.TotalReviews,
		CreatedAt:       p.CreatedAt,
	}
	if p.Shop != nil {
		resp.ShopName = p.Shop.Name
	}

	return resp
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	return lo.Map(products, func(p *entity.Product, _ int) ProductResponse {
		return toProductResponse(p)
	})
}

func toCartLineResponse(l *entity.CartLine) CartLineResponse {
	resp := CartLineResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Size:      l.Size,
		Color:     l.Color,
		Quantity:  l.Quantity,
		Available: l.IsAvailable(),
		LineTotal: l.LineTotal(),
	}
	if l.Product != nil {
		product := toProductResponse(l.Product)
		resp.Product = &product
	}

	return resp
}

func toTotalsResponse(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:    t.Subtotal,
		ShippingFee: t.ShippingFee,
		Total:       t.Total,
		ItemCount:   t.ItemCount,
	}
}

func toCartResponse(view *usecase.CartView) CartResponse {
	return CartResponse{
		Lines: lo.Map(view.Lines, func(l *entity.CartLine, _ int) CartLineResponse {
			return toCartLineResponse(l)
		}),
		Totals: toTotalsResponse(view.Totals),
	}
}

func toOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		ShopID:        o.ShopID,
		ShopName:      o.ShopName,
		Status:        o.Status,
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Delivery: DeliveryResponse{
			RecipientName: o.Delivery.RecipientName,
			Phone:         o.Delivery.Phone,
			Address:       o.Delivery.Address,
			Latitude:      o.Delivery.Latitude,
			Longitude:     o.Delivery.Longitude,
		},
		Customer: CustomerResponse{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
			Email: o.Customer.Email,
		},
		Notes: o.Notes,
		Items: lo.Map(o.Items, func(i *entity.OrderItem, _ int) OrderItemResponse {
			return OrderItemResponse{
				ProductID:    i.ProductID,
				ProductName:  i.ProductName,
				ProductImage: i.ProductImage,
				UnitPrice:    i.UnitPrice,
				Quantity:     i.Quantity,
				Size:         i.Size,
				Color:        i.Color,
				LineTotal:    i.LineTotal(),
			}
		}),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []OrderResponse {
	return lo.Map(orders, func(o *entity.Order, _ int) OrderResponse {
		return toOrderResponse(o)
	})
}

func toAddressResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		FullName:     a.FullName,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
	}
}

func toAddressResponses(addresses []*entity.Address) []AddressResponse {
	return lo.Map(addresses, func(a *entity.Address, _ int) AddressResponse {
		return toAddressResponse(a)
	})
}

func toDashboardResponse(d *usecase.OwnerDashboard) DashboardResponse {
	resp := DashboardResponse{RecentOrders: toOrderResponses(d.RecentOrders)}
	if shop, ok := d.Shop.Get(); ok {
		shopResp := toShopResponse(shop)
		resp.Shop = &shopResp
	}
	if d.Stats != nil {
		resp.Stats = &ShopStatsResponse{
			ProductCount:       d.Stats.ProductCount,
			ActiveProductCount: d.Stats.ActiveProductCount,
			OrderCount:         d.Stats.OrderCount,
			OngoingOrderCount:  d.Stats.OngoingOrderCount,
			DeliveredRevenue:   d.Stats.DeliveredRevenue,
		}
	}

	return resp
}

func toRevenueResponse(r *usecase.RevenueReport) RevenueResponse {
	return RevenueResponse{
		Today:           r.Today,
		ThisMonth:       r.ThisMonth,
		Total:           r.Total,
		DeliveredOrders: r.DeliveredOrders,
		TotalOrders:     r.TotalOrders,
		RecentTransactions: lo.Map(r.RecentTransactions, func(t usecase.RevenueTransaction, _ int) RevenueTransactionResponse {
			return RevenueTransactionResponse{
				OrderID:      t.OrderID,
				OrderNumber:  t.OrderNumber,
				Amount:       t.Amount,
				CustomerName: t.CustomerName,
				CreatedAt:    t.CreatedAt,
			}
		}),
	}
}
