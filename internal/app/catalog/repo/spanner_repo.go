package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_variant"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// CatalogRepo implements CatalogRepository for Spanner.
//
// Global variant-id uniqueness comes from the product_variants primary key,
// so reconstruction never has to re-check it.
type CatalogRepo struct {
	client       *spanner.Client
	productModel *m_product.Model
	variantModel *m_variant.Model
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(client *spanner.Client) contracts.CatalogRepository {
	return &CatalogRepo{
		client:       client,
		productModel: m_product.NewModel(),
		variantModel: m_variant.NewModel(),
	}
}

// GetProduct retrieves a product by ID with its variants, reconstructing the
// domain aggregate.
func (r *CatalogRepo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, r.productModel.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	variantsByProduct, err := r.fetchVariants(ctx, query.Eq(m_variant.ProductID, productID))
	if err != nil {
		return nil, err
	}

	return r.dataToDomain(&data, variantsByProduct[productID])
}

// ListProducts retrieves products newest-first, honoring the filter. The
// style filter runs in SQL; price bounds are applied after reconstruction
// because prices are stored as rational numerator/denominator pairs that do
// not support range predicates directly.
func (r *CatalogRepo) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*domain.Product, error) {
	builder := query.From(m_product.TableName).
		Select(r.productModel.Columns()...).
		OrderBy(m_product.CreatedAt, query.Desc)

	if filter != nil && filter.Style != "" {
		builder = builder.Where(query.Eq(m_product.Style, filter.Style))
	}

	iter := r.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	var rows []*m_product.Data
	productIDs := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		rows = append(rows, &data)
		productIDs = append(productIDs, data.ProductID)
	}

	if len(rows) == 0 {
		return []*domain.Product{}, nil
	}

	variantsByProduct, err := r.fetchVariants(ctx, query.In(m_variant.ProductID, productIDs))
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, data := range rows {
		product, err := r.dataToDomain(data, variantsByProduct[data.ProductID])
		if err != nil {
			return nil, err
		}
		if !matchesPriceBounds(product, filter) {
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// fetchVariants loads variant rows matching the condition, grouped by product
// id and preserving the catalog's position ordering.
func (r *CatalogRepo) fetchVariants(ctx context.Context, cond query.Condition) (map[string][]*domain.Variant, error) {
	stmt := query.From(m_variant.TableName).
		Select(r.variantModel.Columns()...).
		Where(cond).
		OrderBy(m_variant.Position, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	grouped := make(map[string][]*domain.Variant)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variants: %w", err)
		}

		var data m_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse variant: %w", err)
		}

		variant, err := variantDataToDomain(&data)
		if err != nil {
			return nil, err
		}
		grouped[data.ProductID] = append(grouped[data.ProductID], variant)
	}

	return grouped, nil
}

// dataToDomain converts database Data to a domain Product.
func (r *CatalogRepo) dataToDomain(data *m_product.Data, variants []*domain.Variant) (*domain.Product, error) {
	basePrice, err := money.New(data.BasePriceNumerator, data.BasePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid base price: %w", err)
	}

	var originalPrice *money.Money
	if data.OriginalPriceNumerator.Valid && data.OriginalPriceDenominator.Valid {
		originalPrice, err = money.New(data.OriginalPriceNumerator.Int64, data.OriginalPriceDenominator.Int64)
		if err != nil {
			return nil, fmt.Errorf("invalid original price: %w", err)
		}
	}

	return domain.NewProduct(
		data.ProductID,
		data.Name,
		basePrice,
		originalPrice,
		domain.Style(data.Style),
		data.Description,
		data.Images,
		variants,
		data.Rating,
		data.SoldCount,
		data.Location,
		data.ShopName,
	)
}

func variantDataToDomain(data *m_variant.Data) (*domain.Variant, error) {
	var priceOverride *money.Money
	if data.PriceOverrideNumerator.Valid && data.PriceOverrideDenominator.Valid {
		var err error
		priceOverride, err = money.New(data.PriceOverrideNumerator.Int64, data.PriceOverrideDenominator.Int64)
		if err != nil {
			return nil, fmt.Errorf("invalid price override: %w", err)
		}
	}

	return domain.NewVariant(data.VariantID, data.Size, int(data.StockQuantity), priceOverride)
}

func matchesPriceBounds(product *domain.Product, filter *contracts.ListFilter) bool {
	if filter == nil {
		return true
	}
	price := product.BasePrice()
	if filter.MinPrice != nil && price.LessThan(filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && price.GreaterThan(filter.MaxPrice) {
		return false
	}
	return true
}
