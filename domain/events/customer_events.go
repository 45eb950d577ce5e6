package events

// CustomerLoyaltyChanged is published after a customer's loyalty point
// balance changes.
type CustomerLoyaltyChanged struct {
	BaseEvent
	CustomerID string `json:"customerId"`
	OldPoints  int    `json:"oldPoints"`
	NewPoints  int    `json:"newPoints"`
}

// NewCustomerLoyaltyChanged creates a CustomerLoyaltyChanged event.
func NewCustomerLoyaltyChanged(customerID string, oldPoints, newPoints int) *CustomerLoyaltyChanged {
	return &CustomerLoyaltyChanged{
		BaseEvent:  NewBaseEvent(TypeCustomerLoyaltyChanged, EntityCustomer, customerID),
		CustomerID: customerID,
		OldPoints:  oldPoints,
		NewPoints:  newPoints,
	}
}

// CustomerUpdated is published after a customer record changes, including a
// membership tier move.
type CustomerUpdated struct {
	BaseEvent
	CustomerID string `json:"customerId"`
	OldLevel   string `json:"oldMembershipLevel,omitempty"`
	NewLevel   string `json:"membershipLevel,omitempty"`
}

// NewCustomerUpdated creates a CustomerUpdated event for a tier change.
func NewCustomerUpdated(customerID, oldLevel, newLevel string) *CustomerUpdated {
	return &CustomerUpdated{
		BaseEvent:  NewBaseEvent(TypeCustomerUpdated, EntityCustomer, customerID),
		CustomerID: customerID,
		OldLevel:   oldLevel,
		NewLevel:   newLevel,
	}
}
