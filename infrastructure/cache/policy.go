package cache

import (
	"net/http"
	"time"

	"pos-backend/domain/events"
)

// Canonical route patterns, shared by the policy table, the invalidation
// rule table, and the router.
const (
	RouteProducts     = "GET /api/v1/products"
	RouteProductByID  = "GET /api/v1/products/{id}"
	RouteCategories   = "GET /api/v1/categories"
	RouteOrders       = "GET /api/v1/orders"
	RouteOrderByID    = "GET /api/v1/orders/{id}"
	RouteCustomers    = "GET /api/v1/customers"
	RouteCustomerByID = "GET /api/v1/customers/{id}"
	RouteStaff        = "GET /api/v1/staff"
	RouteSalesReport  = "GET /api/v1/reports/sales"
)

// Policy is a route's cache configuration. A nil Condition means every
// request on the route is cacheable.
type Policy struct {
	TTL       time.Duration
	Condition func(r *http.Request) bool
}

// Resolver answers "may this request be cached, and for how long" from a
// static policy table loaded at process start.
type Resolver struct {
	policies map[string]Policy
}

// NewResolver creates a resolver over the given policy table.
func NewResolver(policies map[string]Policy) *Resolver {
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Resolver{policies: policies}
}

// TTL resolves the cache TTL for a request. The pattern must already be the
// canonical configured pattern; no parameter substitution happens here.
// Returns false for unknown routes and for requests a route condition
// rejects.
func (res *Resolver) TTL(pattern string, r *http.Request) (time.Duration, bool) {
	policy, ok := res.policies[pattern]
	if !ok {
		return 0, false
	}
	if policy.Condition != nil && !policy.Condition(r) {
		return 0, false
	}
	return policy.TTL, true
}

// DefaultPolicies is the route cache configuration. Catalog and directory
// listings change rarely and cache long; order views cache briefly; the
// sales report caches only for closed (historical) date ranges, so a report
// over a still-open range always reflects live data.
func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		RouteProducts:     {TTL: 5 * time.Minute},
		RouteProductByID:  {TTL: 5 * time.Minute},
		RouteCategories:   {TTL: 30 * time.Minute},
		RouteOrders:       {TTL: time.Minute},
		RouteOrderByID:    {TTL: time.Minute},
		RouteCustomers:    {TTL: 10 * time.Minute},
		RouteCustomerByID: {TTL: 10 * time.Minute},
		RouteStaff:        {TTL: 30 * time.Minute},
		RouteSalesReport:  {TTL: 15 * time.Minute, Condition: historicalRangeOnly},
	}
}

// historicalRangeOnly admits only report requests whose endDate is a valid
// date strictly before today.
func historicalRangeOnly(r *http.Request) bool {
	end := r.URL.Query().Get("endDate")
	if end == "" {
		return false
	}
	t, err := time.Parse("2006-01-02", end)
	if err != nil {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return t.Before(today)
}

// Rules maps an entity name to the route patterns whose cached responses
// become stale when that entity changes.
type Rules struct {
	byEntity map[string][]string
}

// NewRules creates a rule table.
func NewRules(byEntity map[string][]string) *Rules {
	if byEntity == nil {
		byEntity = DefaultInvalidationRules()
	}
	return &Rules{byEntity: byEntity}
}

// RoutesToInvalidate returns the route patterns to purge for an entity.
// Unknown entity names yield nil, never an error.
func (ru *Rules) RoutesToInvalidate(entity string) []string {
	return ru.byEntity[entity]
}

// DefaultInvalidationRules wires entity changes to the routes they affect.
// Order changes also purge the sales report; product changes purge order
// views because order listings embed product names.
func DefaultInvalidationRules() map[string][]string {
	return map[string][]string{
		events.EntityProduct: {
			RouteProducts,
			RouteProductByID,
		},
		events.EntityCategory: {
			RouteCategories,
			RouteProducts,
			RouteProductByID,
		},
		events.EntityOrder: {
			RouteOrders,
			RouteOrderByID,
			RouteSalesReport,
		},
		events.EntityCustomer: {
			RouteCustomers,
			RouteCustomerByID,
		},
		events.EntityStaff: {
			RouteStaff,
		},
	}
}
