package pricing_test

import (
	"math"
	"testing"
	"time"

	"go-crm/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func catalog() pricing.Service {
	return pricing.Service{
		BasePrice: 500,
		GSTRate:   18,
		Plans: []pricing.Plan{
			{ID: "basic", Name: "Basic", PriceMonthly: 1000, PriceYearly: 10000, PriceOneTime: 0},
			{ID: "pro", Name: "Pro", PriceMonthly: 2499.5, PriceYearly: 24000, PriceOneTime: 60000},
		},
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		svc    pricing.Service
		planID string
		cycle  string
		want   pricing.Quote
	}{
		{
			name:   "monthly plan price",
			svc:    catalog(),
			planID: "basic",
			cycle:  pricing.CycleMonthly,
			want:   pricing.Quote{Base: 1000, GSTRate: 18, Total: 1180},
		},
		{
			name:   "yearly plan price",
			svc:    catalog(),
			planID: "basic",
			cycle:  pricing.CycleYearly,
			want:   pricing.Quote{Base: 10000, GSTRate: 18, Total: 11800},
		},
		{
			name:   "zero plan price falls back to base price",
			svc:    catalog(),
			planID: "basic",
			cycle:  pricing.CycleOneTime,
			want:   pricing.Quote{Base: 500, GSTRate: 18, Total: 590},
		},
		{
			name:   "unknown plan falls back to base price",
			svc:    catalog(),
			planID: "missing",
			cycle:  pricing.CycleMonthly,
			want:   pricing.Quote{Base: 500, GSTRate: 18, Total: 590},
		},
		{
			name:   "rounds half up",
			svc:    pricing.Service{GSTRate: 10, Plans: []pricing.Plan{{ID: "p", PriceMonthly: 5}}},
			planID: "p",
			cycle:  pricing.CycleMonthly,
			want:   pricing.Quote{Base: 5, GSTRate: 10, Total: 6},
		},
		{
			name:   "fractional base",
			svc:    catalog(),
			planID: "pro",
			cycle:  pricing.CycleMonthly,
			want:   pricing.Quote{Base: 2499.5, GSTRate: 18, Total: 2949},
		},
		{
			name:  "missing gst rate defaults to 18",
			svc:   pricing.Service{BasePrice: 1000},
			cycle: pricing.CycleMonthly,
			want:  pricing.Quote{Base: 1000, GSTRate: 18, Total: 1180},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Compute(tt.svc, tt.planID, tt.cycle)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, pricing.Compute(tt.svc, tt.planID, tt.cycle))
		})
	}
}

func TestEffectiveGSTRate(t *testing.T) {
	assert.Equal(t, 18.0, pricing.EffectiveGSTRate(0))
	assert.Equal(t, 18.0, pricing.EffectiveGSTRate(-5))
	assert.Equal(t, 18.0, pricing.EffectiveGSTRate(math.NaN()))
	assert.Equal(t, 12.0, pricing.EffectiveGSTRate(12))
}

func TestRenewalDate(t *testing.T) {
	purchase := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC), pricing.RenewalDate(purchase, pricing.CycleMonthly))
	assert.Equal(t, time.Date(2027, time.March, 15, 10, 0, 0, 0, time.UTC), pricing.RenewalDate(purchase, pricing.CycleYearly))
	assert.Equal(t, time.Date(2027, time.March, 15, 10, 0, 0, 0, time.UTC), pricing.RenewalDate(purchase, pricing.CycleOneTime))
}

func TestAutoRenews(t *testing.T) {
	assert.True(t, pricing.AutoRenews(pricing.CycleMonthly))
	assert.True(t, pricing.AutoRenews(pricing.CycleYearly))
	assert.False(t, pricing.AutoRenews(pricing.CycleOneTime))
}
