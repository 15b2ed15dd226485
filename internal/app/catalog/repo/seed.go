package repo

import (
	"fmt"
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// hatSizes is the standard fitted-cap size run, deliberately out of numeric
// order so sorting behavior is visible in development.
var hatSizes = []string{"7", "7 1/8", "7 1/4", "7 3/8", "7 1/2", "7 5/8", "7 3/4", "8"}

type seedProduct struct {
	id            string
	name          string
	basePrice     string
	originalPrice string
	style         domain.Style
	description   string
	rating        float64
	soldCount     int64
	location      string
	shopName      string
	images        []string
	stocks        []int
}

// Stock runs are chosen so every product shows the full range of availability
// states: sold out, low stock, urgency range, and plenty.
var seedProducts = []seedProduct{
	{
		id:            "prod_001",
		name:          "IPAP LOGO EMBROIDERED FITTED",
		basePrice:     "3495.00",
		originalPrice: "4500.00",
		style:         domain.StyleFitted,
		description:   "Constructed from premium Japanese twill. Features our signature high-density embroidery on the front panel.",
		rating:        4.9,
		soldCount:     1240,
		location:      "Makati City",
		shopName:      "IPAP Official",
		images: []string{
			"https://images.unsplash.com/photo-1588850561407-ed78c282e89b?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1575428652377-a2d80e2277fc?auto=format&fit=crop&q=80&w=800",
		},
		stocks: []int{12, 0, 2, 7, 4, 0, 18, 1},
	},
	{
		id:          "prod_002",
		name:        "VINTAGE WASH DAD HAT",
		basePrice:   "2250.00",
		style:       domain.StyleDadHat,
		description: "Enzyme washed cotton for that perfect vintage feel right out of the box.",
		rating:      4.7,
		soldCount:   856,
		location:    "Quezon City",
		shopName:    "Vintage Vault",
		images: []string{
			"https://images.unsplash.com/photo-1533827432537-70133748f5c8?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1521369909029-2afed882baee?auto=format&fit=crop&q=80&w=800",
		},
		stocks: []int{5, 9, 0, 3, 14, 2, 6, 11},
	},
	{
		id:            "prod_003",
		name:          "TECHNICAL RUNNER CAP",
		basePrice:     "2890.00",
		originalPrice: "3200.00",
		style:         domain.StyleSnapback,
		description:   "Lightweight, breathable nylon construction. Perfect for active use.",
		rating:        4.8,
		soldCount:     342,
		location:      "Pasig City",
		shopName:      "IPAP Sport",
		images: []string{
			"https://images.unsplash.com/photo-1622445272461-c6580cab8755?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1556306535-0f09a537f0a3?auto=format&fit=crop&q=80&w=800",
		},
		stocks: []int{1, 4, 8, 0, 16, 7, 2, 10},
	},
	{
		id:          "prod_004",
		name:        "HEAVYWEIGHT CANVAS TRUCKER",
		basePrice:   "2450.00",
		style:       domain.StyleTrucker,
		description: "Structured foam front with heavy canvas mesh back.",
		rating:      4.6,
		soldCount:   2100,
		location:    "Paranaque",
		shopName:    "IPAP Warehouse",
		images: []string{
			"https://images.unsplash.com/photo-1513187219567-36109e4141d4?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1563200782-b732b1739c94?auto=format&fit=crop&q=80&w=800",
		},
		stocks: []int{0, 13, 6, 2, 9, 4, 0, 15},
	},
}

// DemoCatalog builds the demo product set used by the development server and
// the seeding tool. Variant ids are deterministic so seeding is idempotent.
func DemoCatalog() ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		basePrice, err := money.FromDecimalString(sp.basePrice)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: %w", sp.id, err)
		}

		var originalPrice *money.Money
		if sp.originalPrice != "" {
			originalPrice, err = money.FromDecimalString(sp.originalPrice)
			if err != nil {
				return nil, fmt.Errorf("seed product %s: %w", sp.id, err)
			}
		}

		variants := make([]*domain.Variant, 0, len(hatSizes))
		for i, size := range hatSizes {
			variant, err := domain.NewVariant(variantID(sp.id, size), size, sp.stocks[i], nil)
			if err != nil {
				return nil, fmt.Errorf("seed product %s size %s: %w", sp.id, size, err)
			}
			variants = append(variants, variant)
		}

		product, err := domain.NewProduct(
			sp.id,
			sp.name,
			basePrice,
			originalPrice,
			sp.style,
			sp.description,
			sp.images,
			variants,
			sp.rating,
			sp.soldCount,
			sp.location,
			sp.shopName,
		)
		if err != nil {
			return nil, fmt.Errorf("seed product %s: %w", sp.id, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func variantID(productID, size string) string {
	slug := strings.NewReplacer(" ", "", "/", "").Replace(size)
	return fmt.Sprintf("v_%s_%s", productID, slug)
}
