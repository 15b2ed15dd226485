package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/queries/list_products"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// VariantView is one size option on the product page, annotated with
// availability so the UI can disable sold-out sizes and surface urgency.
type VariantView struct {
	ID          string `json:"id"`
	Size        string `json:"size"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
	Selectable  bool   `json:"selectable"`
	Price       string `json:"price"`
	StockNotice string `json:"stock_notice,omitempty"`
}

// ProductDetail is the product page read model. Variants come sorted by
// numeric size value, fractional sizes included.
type ProductDetail struct {
	list_products.ProductSummary
	Description string        `json:"description"`
	Variants    []VariantView `json:"variants"`
}

// Query handles the get product query.
type Query struct {
	catalog contracts.CatalogRepository
}

// NewQuery creates a new get product query.
func NewQuery(catalog contracts.CatalogRepository) *Query {
	return &Query{catalog: catalog}
}

// Execute retrieves a product with its sorted, availability-annotated
// variants.
func (q *Query) Execute(ctx context.Context, req *Request) (*ProductDetail, error) {
	product, err := q.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	sorted := product.SortedVariants()
	variants := make([]VariantView, 0, len(sorted))
	for _, v := range sorted {
		view := VariantView{
			ID:         v.ID(),
			Size:       v.Size(),
			Stock:      v.Stock(),
			Status:     string(v.Status()),
			Selectable: v.Selectable(),
			Price:      v.UnitPrice(product.BasePrice()).String(),
		}
		if notice, show := v.StockNotice(); show {
			view.StockNotice = notice
		}
		variants = append(variants, view)
	}

	return &ProductDetail{
		ProductSummary: list_products.Summarize(product),
		Description:    product.Description(),
		Variants:       variants,
	}, nil
}
