package cache

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/domain/events"
)

func TestResolverKnownRoute(t *testing.T) {
	res := NewResolver(nil)
	r := httptest.NewRequest("GET", "/api/v1/products", nil)

	ttl, ok := res.TTL(RouteProducts, r)
	require.True(t, ok)
	assert.Equal(t, 5*time.Minute, ttl)
}

func TestResolverUnknownRoute(t *testing.T) {
	res := NewResolver(nil)
	r := httptest.NewRequest("GET", "/api/v1/unknown", nil)

	ttl, ok := res.TTL("GET /api/v1/unknown", r)
	assert.False(t, ok)
	assert.Zero(t, ttl)
}

func TestResolverSalesReportCondition(t *testing.T) {
	res := NewResolver(nil)

	tests := []struct {
		name      string
		endDate   string
		cacheable bool
	}{
		{"closed range", "2000-01-02", true},
		{"today", time.Now().UTC().Format("2006-01-02"), false},
		{"future", time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"), false},
		{"missing endDate", "", false},
		{"garbage endDate", "not-a-date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/v1/reports/sales"
			if tt.endDate != "" {
				target += "?startDate=2000-01-01&endDate=" + tt.endDate
			}
			r := httptest.NewRequest("GET", target, nil)

			_, ok := res.TTL(RouteSalesReport, r)
			assert.Equal(t, tt.cacheable, ok)
		})
	}
}

func TestRulesKnownEntities(t *testing.T) {
	rules := NewRules(nil)

	assert.ElementsMatch(t,
		[]string{RouteProducts, RouteProductByID},
		rules.RoutesToInvalidate(events.EntityProduct))
	assert.Contains(t, rules.RoutesToInvalidate(events.EntityOrder), RouteSalesReport)
	assert.Contains(t, rules.RoutesToInvalidate(events.EntityCategory), RouteProducts)
}

func TestRulesUnknownEntity(t *testing.T) {
	rules := NewRules(nil)
	assert.Empty(t, rules.RoutesToInvalidate("warehouse"))
}
