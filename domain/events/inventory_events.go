package events

// ProductInventoryChanged is published after a product's stock quantity
// changes, whatever the cause (sale, cancellation, manual adjustment).
type ProductInventoryChanged struct {
	BaseEvent
	ProductID   string `json:"productId"`
	OldQuantity int    `json:"oldQuantity"`
	NewQuantity int    `json:"newQuantity"`
}

// NewProductInventoryChanged creates a ProductInventoryChanged event.
func NewProductInventoryChanged(productID string, oldQuantity, newQuantity int) *ProductInventoryChanged {
	return &ProductInventoryChanged{
		BaseEvent:   NewBaseEvent(TypeProductInventoryChanged, EntityProduct, productID),
		ProductID:   productID,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
	}
}

// InventoryLow is published when stock falls to or below the product's
// low-stock threshold while still positive.
type InventoryLow struct {
	BaseEvent
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// NewInventoryLow creates an InventoryLow event.
func NewInventoryLow(productID string, quantity, threshold int) *InventoryLow {
	return &InventoryLow{
		BaseEvent: NewBaseEvent(TypeInventoryLow, EntityProduct, productID),
		ProductID: productID,
		Quantity:  quantity,
		Threshold: threshold,
	}
}

// InventoryOutOfStock is published when stock reaches zero or below.
type InventoryOutOfStock struct {
	BaseEvent
	ProductID string `json:"productId"`
}

// NewInventoryOutOfStock creates an InventoryOutOfStock event.
func NewInventoryOutOfStock(productID string) *InventoryOutOfStock {
	return &InventoryOutOfStock{
		BaseEvent: NewBaseEvent(TypeInventoryOutOfStock, EntityProduct, productID),
		ProductID: productID,
	}
}
