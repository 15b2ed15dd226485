package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Request carries the browse filters.
type Request struct {
	Style    string
	MinPrice *money.Money
	MaxPrice *money.Money
}

// ProductSummary is the storefront listing row.
type ProductSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	OriginalPrice   string   `json:"original_price,omitempty"`
	DiscountPercent int64    `json:"discount_percent,omitempty"`
	Style           string   `json:"style"`
	Rating          float64  `json:"rating"`
	SoldCount       int64    `json:"sold_count"`
	Location        string   `json:"location"`
	ShopName        string   `json:"shop_name"`
	Images          []string `json:"images"`
}

// Query handles the product listing query.
type Query struct {
	catalog contracts.CatalogRepository
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.CatalogRepository) *Query {
	return &Query{catalog: catalog}
}

// Execute lists products matching the filters. Styles are validated against
// the closed set before hitting the repository.
func (q *Query) Execute(ctx context.Context, req *Request) ([]ProductSummary, error) {
	filter := &contracts.ListFilter{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
	if req.Style != "" {
		style, err := domain.ParseStyle(req.Style)
		if err != nil {
			return nil, err
		}
		filter.Style = string(style)
	}

	products, err := q.catalog.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, Summarize(p))
	}
	return summaries, nil
}

// Summarize projects a product into its listing row.
func Summarize(p *domain.Product) ProductSummary {
	summary := ProductSummary{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.BasePrice().String(),
		Style:     string(p.Style()),
		Rating:    p.Rating(),
		SoldCount: p.SoldCount(),
		Location:  p.Location(),
		ShopName:  p.ShopName(),
		Images:    p.Images(),
	}
	if original := p.OriginalPrice(); original != nil {
		summary.OriginalPrice = original.String()
	}
	if percent, ok := p.DiscountPercent(); ok {
		summary.DiscountPercent = percent
	}
	return summary
}
