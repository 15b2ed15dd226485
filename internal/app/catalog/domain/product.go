package domain

import (
	"math"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Style is the closed set of headwear categories the store carries.
type Style string

const (
	StyleFitted   Style = "FITTED"
	StyleSnapback Style = "SNAPBACK"
	StyleDadHat   Style = "DAD_HAT"
	StyleTrucker  Style = "TRUCKER"
	StyleApparel  Style = "APPAREL"
)

// ParseStyle validates a style tag against the closed set.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleFitted, StyleSnapback, StyleDadHat, StyleTrucker, StyleApparel:
		return Style(s), nil
	}
	return "", ErrInvalidStyle
}

// Product is a catalog entry with its size variants. Products are created by
// the catalog provider and immutable from the core's perspective, so there
// are no mutating operations here.
type Product struct {
	id            string
	name          string
	basePrice     *money.Money
	originalPrice *money.Money
	style         Style
	description   string
	images        []string
	variants      []*Variant
	rating        float64
	soldCount     int64
	location      string
	shopName      string
}

// NewProduct creates a Product and validates its invariants. Variant ids must
// be unique within the product; global uniqueness across products is enforced
// at the catalog boundary.
func NewProduct(
	id, name string,
	basePrice, originalPrice *money.Money,
	style Style,
	description string,
	images []string,
	variants []*Variant,
	rating float64,
	soldCount int64,
	location, shopName string,
) (*Product, error) {
	if id == "" {
		return nil, ErrProductNotFound
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if basePrice == nil || basePrice.IsNegative() || basePrice.IsZero() {
		return nil, ErrInvalidPrice
	}
	if _, err := ParseStyle(string(style)); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if seen[v.ID()] {
			return nil, ErrDuplicateVariant
		}
		seen[v.ID()] = true
	}

	p := &Product{
		id:          id,
		name:        name,
		basePrice:   basePrice.Copy(),
		style:       style,
		description: description,
		images:      append([]string(nil), images...),
		variants:    append([]*Variant(nil), variants...),
		rating:      rating,
		soldCount:   soldCount,
		location:    location,
		shopName:    shopName,
	}
	if originalPrice != nil {
		p.originalPrice = originalPrice.Copy()
	}
	return p, nil
}

// Getters
func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) BasePrice() *money.Money { return p.basePrice.Copy() }
func (p *Product) Style() Style            { return p.style }
func (p *Product) Description() string     { return p.description }
func (p *Product) Images() []string        { return append([]string(nil), p.images...) }
func (p *Product) Rating() float64         { return p.rating }
func (p *Product) SoldCount() int64        { return p.soldCount }
func (p *Product) Location() string        { return p.location }
func (p *Product) ShopName() string        { return p.shopName }

// OriginalPrice returns the pre-discount price, or nil when the product is
// not discounted.
func (p *Product) OriginalPrice() *money.Money {
	if p.originalPrice == nil {
		return nil
	}
	return p.originalPrice.Copy()
}

// DiscountPercent returns the rounded markdown percentage against the
// original price, and whether a markdown applies at all. Display only.
func (p *Product) DiscountPercent() (int64, bool) {
	if p.originalPrice == nil || !p.originalPrice.GreaterThan(p.basePrice) {
		return 0, false
	}
	orig := p.originalPrice.Float64()
	saved := orig - p.basePrice.Float64()
	return int64(math.Round(saved / orig * 100)), true
}

// Variants returns the variants in catalog order.
func (p *Product) Variants() []*Variant {
	return append([]*Variant(nil), p.variants...)
}

// SortedVariants returns the variants in display order (ascending size).
func (p *Product) SortedVariants() []*Variant {
	return SortVariants(p.variants)
}

// Variant finds a variant of this product by id.
func (p *Product) Variant(variantID string) (*Variant, error) {
	for _, v := range p.variants {
		if v.ID() == variantID {
			return v, nil
		}
	}
	return nil, ErrVariantNotFound
}
