package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	orderModel *m_order.Model
	itemModel  *m_order_item.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo() contracts.OrderRepository {
	return &OrderRepo{
		orderModel: m_order.NewModel(),
		itemModel:  m_order_item.NewModel(),
	}
}

// InsertMuts creates mutations for the order header and all of its items.
func (r *OrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	subNum, subDenom, err := storableParts(order.Subtotal(), "subtotal")
	if err != nil {
		return nil, err
	}
	shipNum, shipDenom, err := storableParts(order.ShippingCost(), "shipping")
	if err != nil {
		return nil, err
	}
	totalNum, totalDenom, err := storableParts(order.Total(), "total")
	if err != nil {
		return nil, err
	}

	muts := make([]*spanner.Mutation, 0, len(order.Items())+1)
	muts = append(muts, r.orderModel.InsertMut(&m_order.Data{
		OrderID:             order.ID(),
		SessionID:           order.SessionID(),
		Status:              string(order.Status()),
		SubtotalNumerator:   subNum,
		SubtotalDenominator: subDenom,
		ShippingNumerator:   shipNum,
		ShippingDenominator: shipDenom,
		TotalNumerator:      totalNum,
		TotalDenominator:    totalDenom,
	}))

	for _, item := range order.Items() {
		priceNum, priceDenom, err := storableParts(item.UnitPrice(), "unit price")
		if err != nil {
			return nil, err
		}
		muts = append(muts, r.itemModel.InsertMut(&m_order_item.Data{
			OrderItemID:          item.ID(),
			OrderID:              order.ID(),
			ProductID:            item.ProductID(),
			VariantID:            item.VariantID(),
			Name:                 item.Name(),
			Size:                 item.Size(),
			Quantity:             int64(item.Quantity()),
			UnitPriceNumerator:   priceNum,
			UnitPriceDenominator: priceDenom,
		}))
	}

	return muts, nil
}

func storableParts(amount *money.Money, field string) (int64, int64, error) {
	if !amount.IsSafeForStorage() {
		return 0, 0, fmt.Errorf("%s exceeds storage capacity", field)
	}
	num, err := amount.Numerator()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", field, err)
	}
	denom, err := amount.Denominator()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", field, err)
	}
	return num, denom, nil
}
