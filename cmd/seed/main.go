// Command seed loads the demo catalog into Spanner. It is idempotent:
// product and variant ids are deterministic and rows are inserted with
// InsertOrUpdate semantics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/catalog/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_variant"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "storefront"), "Spanner database ID")
)

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Demo catalog seeded successfully!")
}

func run(ctx context.Context) error {
	dbPath := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	client, err := spanner.NewClient(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	products, err := repo.DemoCatalog()
	if err != nil {
		return fmt.Errorf("failed to build demo catalog: %w", err)
	}

	productModel := m_product.NewModel()
	variantModel := m_variant.NewModel()

	var muts []*spanner.Mutation
	for _, product := range products {
		data, err := productData(product)
		if err != nil {
			return err
		}
		muts = append(muts, productModel.InsertMut(data))

		for position, variant := range product.Variants() {
			muts = append(muts, variantModel.InsertMut(variantData(product.ID(), variant, position)))
		}
		log.Printf("Queued product %s with %d variants", product.ID(), len(product.Variants()))
	}

	if _, err := client.Apply(ctx, muts); err != nil {
		return fmt.Errorf("failed to apply seed mutations: %w", err)
	}
	return nil
}

func productData(product *catalogdomain.Product) (*m_product.Data, error) {
	baseNum, baseDenom, err := parts(product.BasePrice())
	if err != nil {
		return nil, fmt.Errorf("product %s base price: %w", product.ID(), err)
	}

	data := &m_product.Data{
		ProductID:            product.ID(),
		Name:                 product.Name(),
		Description:          product.Description(),
		Style:                string(product.Style()),
		ShopName:             product.ShopName(),
		Location:             product.Location(),
		Rating:               product.Rating(),
		SoldCount:            product.SoldCount(),
		BasePriceNumerator:   baseNum,
		BasePriceDenominator: baseDenom,
		Images:               product.Images(),
	}

	if original := product.OriginalPrice(); original != nil {
		num, denom, err := parts(original)
		if err != nil {
			return nil, fmt.Errorf("product %s original price: %w", product.ID(), err)
		}
		data.OriginalPriceNumerator = spanner.NullInt64{Int64: num, Valid: true}
		data.OriginalPriceDenominator = spanner.NullInt64{Int64: denom, Valid: true}
	}

	return data, nil
}

func variantData(productID string, variant *catalogdomain.Variant, position int) *m_variant.Data {
	return &m_variant.Data{
		VariantID:     variant.ID(),
		ProductID:     productID,
		Size:          variant.Size(),
		StockQuantity: int64(variant.Stock()),
		Position:      int64(position),
	}
}

func parts(amount *money.Money) (int64, int64, error) {
	num, err := amount.Numerator()
	if err != nil {
		return 0, 0, err
	}
	denom, err := amount.Denominator()
	if err != nil {
		return 0, 0, err
	}
	return num, denom, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
