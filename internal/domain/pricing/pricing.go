// Package pricing holds the marketplace's money rules: shipping, cart totals and order numbering.
package pricing

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/samber/lo"
)

// Policy is the shipping rule: orders at or above the threshold ship free, others pay a flat fee.
type Policy struct {
	FreeShippingThreshold entity.Money
	ShippingFee           entity.Money
}

// NewPolicy builds a Policy from plain amounts.
func NewPolicy(freeShippingThreshold, shippingFee float64) Policy {
	return Policy{
		FreeShippingThreshold: entity.NewMoney(freeShippingThreshold),
		ShippingFee:           entity.NewMoney(shippingFee),
	}
}

// Shipping returns the fee for a subtotal. An empty subtotal ships nothing and costs nothing.
func (p Policy) Shipping(subtotal entity.Money) entity.Money {
	if !subtotal.IsPositive() || subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return entity.ZeroMoney
	}

	return p.ShippingFee
}

// Totals is a priced basket.
type Totals struct {
	Subtotal    entity.Money
	ShippingFee entity.Money
	Total       entity.Money
	ItemCount   int
}

// Quote prices a set of cart lines. Unavailable lines contribute neither to subtotal nor to the item count.
func (p Policy) Quote(lines []*entity.CartLine) Totals {
	available := lo.Filter(lines, func(l *entity.CartLine, _ int) bool { return l.IsAvailable() })
	subtotal := lo.Reduce(available, func(acc entity.Money, l *entity.CartLine, _ int) entity.Money {
		return acc.Add(l.LineTotal())
	}, entity.ZeroMoney)

	return p.totals(subtotal, lo.SumBy(available, func(l *entity.CartLine) int { return l.Quantity }))
}

// QuoteItems prices frozen order items.
func (p Policy) QuoteItems(items []*entity.OrderItem) Totals {
	subtotal := lo.Reduce(items, func(acc entity.Money, i *entity.OrderItem, _ int) entity.Money {
		return acc.Add(i.LineTotal())
	}, entity.ZeroMoney)

	return p.totals(subtotal, lo.SumBy(items, func(i *entity.OrderItem) int { return i.Quantity }))
}

func (p Policy) totals(subtotal entity.Money, count int) Totals {
	shipping := p.Shipping(subtotal)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		Total:       subtotal.Add(shipping),
		ItemCount:   count,
	}
}

const orderSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// OrderNumberGenerator produces human-readable order numbers such as ORD-20250131-7KQ2MX.
type OrderNumberGenerator struct {
	prefix string
	now    func() time.Time
}

// NewOrderNumberGenerator creates a generator with the given prefix.
func NewOrderNumberGenerator(prefix string) *OrderNumberGenerator {
	if prefix == "" {
		prefix = "ORD"
	}

	return &OrderNumberGenerator{prefix: strings.ToUpper(prefix), now: time.Now}
}

// Next returns a new order number. Uniqueness is backed by a unique index on the column.
func (g *OrderNumberGenerator) Next() (string, error) {
	var suffix strings.Builder
	limit := big.NewInt(int64(len(orderSuffixAlphabet)))
	for range 6 {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate order number")
		}
		suffix.WriteByte(orderSuffixAlphabet[n.Int64()])
	}

	return fmt.Sprintf("%s-%s-%s", g.prefix, g.now().UTC().Format("20060102"), suffix.String()), nil
}
