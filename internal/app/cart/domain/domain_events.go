package domain

// DomainEvent is the base interface for cart events delivered to observers.
type DomainEvent interface {
	EventType() string
}

// LineAddedEvent is emitted when an add-to-cart lands, whether it created a
// new line or merged into an existing one.
type LineAddedEvent struct {
	ProductID string
	VariantID string
	Quantity  int
	Merged    bool
}

func (e *LineAddedEvent) EventType() string { return "cart.line_added" }

// LineRemovedEvent is emitted when a line is removed.
type LineRemovedEvent struct {
	VariantID string
}

func (e *LineRemovedEvent) EventType() string { return "cart.line_removed" }

// QuantityUpdatedEvent is emitted when a line's quantity changes.
type QuantityUpdatedEvent struct {
	VariantID string
	Quantity  int
}

func (e *QuantityUpdatedEvent) EventType() string { return "cart.quantity_updated" }

// SelectionToggledEvent is emitted when a single line's selection flips.
type SelectionToggledEvent struct {
	VariantID string
	Selected  bool
}

func (e *SelectionToggledEvent) EventType() string { return "cart.selection_toggled" }

// AllSelectionSetEvent is emitted when every line's selection is set at once.
type AllSelectionSetEvent struct {
	Selected bool
}

func (e *AllSelectionSetEvent) EventType() string { return "cart.all_selection_set" }

// ClearedEvent is emitted when the cart is emptied.
type ClearedEvent struct{}

func (e *ClearedEvent) EventType() string { return "cart.cleared" }

// DrawerToggledEvent is emitted when the drawer opens or closes.
type DrawerToggledEvent struct {
	Open bool
}

func (e *DrawerToggledEvent) EventType() string { return "cart.drawer_toggled" }
