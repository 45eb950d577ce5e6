package events

// EntityChanged is the shared shape of plain CRUD change notifications. The
// cache invalidation subscriber only needs the entity name from the
// envelope; these events carry no extra payload.
type EntityChanged struct {
	BaseEvent
}

// NewProductCreated signals a new product.
func NewProductCreated(productID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeProductCreated, EntityProduct, productID)}
}

// NewProductUpdated signals an edited product.
func NewProductUpdated(productID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeProductUpdated, EntityProduct, productID)}
}

// NewProductDeleted signals a removed product.
func NewProductDeleted(productID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeProductDeleted, EntityProduct, productID)}
}

// NewCategoryChanged signals any category mutation.
func NewCategoryChanged(categoryID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeCategoryChanged, EntityCategory, categoryID)}
}

// NewCustomerCreated signals a new customer.
func NewCustomerCreated(customerID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeCustomerCreated, EntityCustomer, customerID)}
}

// NewCustomerDeleted signals a removed customer.
func NewCustomerDeleted(customerID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeCustomerDeleted, EntityCustomer, customerID)}
}

// NewStaffChanged signals any staff mutation.
func NewStaffChanged(staffID string) *EntityChanged {
	return &EntityChanged{BaseEvent: NewBaseEvent(TypeStaffChanged, EntityStaff, staffID)}
}
