package events

// Event types.
const (
	// Order events
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status.changed"

	// Inventory events
	TypeProductInventoryChanged = "product.inventory.changed"
	TypeInventoryLow            = "inventory.low"
	TypeInventoryOutOfStock     = "inventory.out_of_stock"

	// Loyalty events
	TypeCustomerLoyaltyChanged = "customer.loyalty.changed"
	TypeCustomerUpdated        = "customer.updated"

	// Catalog and directory change events, consumed by cache invalidation
	TypeProductCreated  = "product.created"
	TypeProductUpdated  = "product.updated"
	TypeProductDeleted  = "product.deleted"
	TypeCategoryChanged = "category.changed"
	TypeCustomerCreated = "customer.created"
	TypeCustomerDeleted = "customer.deleted"
	TypeStaffChanged    = "staff.changed"
)

// Entity names used by the cache invalidation rule table.
const (
	EntityProduct  = "product"
	EntityCategory = "category"
	EntityOrder    = "order"
	EntityCustomer = "customer"
	EntityStaff    = "staff"
)

// EntityChangeTypes lists every event type that marks an entity as changed.
// The cache invalidation subscriber binds to exactly these types.
var EntityChangeTypes = []string{
	TypeOrderCreated,
	TypeOrderStatusChanged,
	TypeProductInventoryChanged,
	TypeCustomerLoyaltyChanged,
	TypeCustomerUpdated,
	TypeProductCreated,
	TypeProductUpdated,
	TypeProductDeleted,
	TypeCategoryChanged,
	TypeCustomerCreated,
	TypeCustomerDeleted,
	TypeStaffChanged,
}
