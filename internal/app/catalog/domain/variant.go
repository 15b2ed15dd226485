package domain

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Stock thresholds for availability classification.
const (
	// LowStockThreshold is the stock level below which a variant is flagged
	// as low stock (exclusive upper bound).
	LowStockThreshold = 3

	// UrgencyThreshold is the stock level below which the storefront shows
	// an "only N left" notice for the selected variant.
	UrgencyThreshold = 5
)

// StockStatus classifies the availability of a variant.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusInStock    StockStatus = "in_stock"
)

// Variant is one purchasable size option of a product. The stock figure is a
// read-only snapshot from the catalog; the core never decrements it.
type Variant struct {
	id            string
	size          string
	stock         int
	priceOverride *money.Money
}

// NewVariant creates a Variant.
func NewVariant(id, size string, stock int, priceOverride *money.Money) (*Variant, error) {
	if id == "" {
		return nil, ErrVariantNotFound
	}
	if size == "" {
		return nil, ErrEmptySize
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	v := &Variant{
		id:    id,
		size:  size,
		stock: stock,
	}
	if priceOverride != nil {
		v.priceOverride = priceOverride.Copy()
	}
	return v, nil
}

// ID returns the variant identifier.
func (v *Variant) ID() string { return v.id }

// Size returns the size label, e.g. "7 1/8" or "M".
func (v *Variant) Size() string { return v.size }

// Stock returns the stock snapshot.
func (v *Variant) Stock() int { return v.stock }

// UnitPrice returns the override price when present, falling back to the
// product base price.
func (v *Variant) UnitPrice(basePrice *money.Money) *money.Money {
	if v.priceOverride != nil {
		return v.priceOverride.Copy()
	}
	return basePrice.Copy()
}

// Status classifies the variant as out-of-stock, low-stock, or in-stock.
func (v *Variant) Status() StockStatus {
	switch {
	case v.stock == 0:
		return StatusOutOfStock
	case v.stock < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Selectable reports whether the variant can be chosen on a product page.
// Out-of-stock variants render disabled and reject selection.
func (v *Variant) Selectable() bool {
	return v.stock > 0
}

// StockNotice returns the shopper-facing message for a selected variant,
// and whether it should be rendered as urgent.
func (v *Variant) StockNotice() (string, bool) {
	if v.stock == 0 {
		return "Out of Stock", true
	}
	if v.stock < UrgencyThreshold {
		return fmt.Sprintf("Only %d left!", v.stock), true
	}
	return "", false
}

// sizeValue derives a comparable value from the size label. Labels with a
// space are read as whole number plus fraction ("7 1/8" -> 7.125); anything
// else is parsed as a plain decimal, defaulting to 0 when unparseable.
func sizeValue(size string) *big.Rat {
	if whole, frac, ok := strings.Cut(size, " "); ok {
		w, wok := new(big.Rat).SetString(whole)
		f, fok := new(big.Rat).SetString(frac)
		if wok && fok {
			return w.Add(w, f)
		}
		return new(big.Rat)
	}
	if val, ok := new(big.Rat).SetString(size); ok {
		return val
	}
	return new(big.Rat)
}

// SortVariants returns the variants in stable ascending size order.
// The input slice is not modified.
func SortVariants(variants []*Variant) []*Variant {
	sorted := make([]*Variant, len(variants))
	copy(sorted, variants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sizeValue(sorted[i].size).Cmp(sizeValue(sorted[j].size)) < 0
	})
	return sorted
}
