package domain

// VariantSelection tracks which variant is active on a product detail view.
// Selecting an out-of-stock variant is silently ignored; the previous
// selection survives. Viewing a different product resets the selection.
type VariantSelection struct {
	productID string
	variantID string
}

// NewVariantSelection creates an empty selection.
func NewVariantSelection() *VariantSelection {
	return &VariantSelection{}
}

// ViewProduct records which product is being viewed. Moving to a different
// product clears any previous variant selection.
func (s *VariantSelection) ViewProduct(productID string) {
	if s.productID != productID {
		s.productID = productID
		s.variantID = ""
	}
}

// Select makes the variant active. Out-of-stock variants are rejected
// without error and the previous selection stands. Returns whether the
// selection was applied.
func (s *VariantSelection) Select(v *Variant) bool {
	if !v.Selectable() {
		return false
	}
	s.variantID = v.ID()
	return true
}

// SelectedVariantID returns the active variant id, if any.
func (s *VariantSelection) SelectedVariantID() (string, bool) {
	return s.variantID, s.variantID != ""
}

// ProductID returns the product currently being viewed.
func (s *VariantSelection) ProductID() string {
	return s.productID
}
