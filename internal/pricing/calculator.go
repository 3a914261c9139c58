package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CycleMonthly = "Monthly"
	CycleYearly  = "Yearly"
	CycleOneTime = "One Time"

	DefaultGSTRate = 18.0
)

// Plan is the price snapshot of one catalog plan.
type Plan struct {
	ID           string
	Name         string
	PriceMonthly float64
	PriceYearly  float64
	PriceOneTime float64
}

// Service is the catalog entry the calculator prices against.
type Service struct {
	BasePrice float64
	GSTRate   float64
	Plans     []Plan
}

// Quote is the outcome of pricing a service, plan and cycle.
type Quote struct {
	Base    float64 `json:"base"`
	GSTRate float64 `json:"gstRate"`
	Total   float64 `json:"total"`
}

func IsValidCycle(cycle string) bool {
	switch cycle {
	case CycleMonthly, CycleYearly, CycleOneTime:
		return true
	}
	return false
}

// EffectiveGSTRate returns rate, or the default when rate is zero, negative or not a number.
func EffectiveGSTRate(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return DefaultGSTRate
	}
	return rate
}

// PriceForCycle picks the plan price matching cycle. Unknown cycles price at zero.
func (p Plan) PriceForCycle(cycle string) float64 {
	switch cycle {
	case CycleMonthly:
		return p.PriceMonthly
	case CycleYearly:
		return p.PriceYearly
	case CycleOneTime:
		return p.PriceOneTime
	}
	return 0
}

func (s Service) findPlan(planID string) (Plan, bool) {
	if planID == "" {
		return Plan{}, false
	}
	for _, p := range s.Plans {
		if p.ID == planID {
			return p, true
		}
	}
	return Plan{}, false
}

// BasePrice resolves the pre-tax price: the plan's cycle price, or the
// service base price when no plan matches or the plan price is zero.
func BasePrice(svc Service, planID, cycle string) float64 {
	var base float64
	if plan, ok := svc.findPlan(planID); ok {
		base = plan.PriceForCycle(cycle)
	}
	if base <= 0 {
		base = svc.BasePrice
	}
	return base
}

// WithGST returns round(base + base*rate/100) using the effective rate.
func WithGST(base, rate float64) float64 {
	effective := decimal.NewFromFloat(EffectiveGSTRate(rate))
	b := decimal.NewFromFloat(base)
	total := b.Add(b.Mul(effective).Div(decimal.NewFromInt(100))).Round(0)
	return total.InexactFloat64()
}

// Compute prices svc for planID and cycle.
func Compute(svc Service, planID, cycle string) Quote {
	base := BasePrice(svc, planID, cycle)
	rate := EffectiveGSTRate(svc.GSTRate)
	return Quote{
		Base:    base,
		GSTRate: rate,
		Total:   WithGST(base, rate),
	}
}

// RenewalDate advances purchase by one month for Monthly and twelve months otherwise.
func RenewalDate(purchase time.Time, cycle string) time.Time {
	if cycle == CycleMonthly {
		return purchase.AddDate(0, 1, 0)
	}
	return purchase.AddDate(0, 12, 0)
}

// AutoRenews reports whether a subscription on cycle renews by itself.
func AutoRenews(cycle string) bool {
	return cycle != CycleOneTime
}
