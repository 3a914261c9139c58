package brandservice

import (
	"time"

	"go-crm/internal/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

type Feature struct {
	Name string `json:"name"`
}

type BrandService struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServiceCode string    `gorm:"not null"`
	ServiceName string    `gorm:"not null"`
	Category    string
	Description string
	BasePrice   float64 `gorm:"type:numeric(14,2);not null;default:0"`
	GSTRate     float64 `gorm:"column:gst_rate;type:numeric(5,2);not null;default:18"`
	Notes       []Note  `gorm:"type:jsonb;serializer:json"`
	IsActive    bool    `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Plans []Plan `gorm:"foreignKey:ServiceID"`
}

func (BrandService) TableName() string {
	return "brand_services"
}

type Plan struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServiceID    uuid.UUID `gorm:"type:uuid;not null"`
	Name         string    `gorm:"not null"`
	PriceMonthly float64   `gorm:"type:numeric(14,2);not null;default:0"`
	PriceYearly  float64   `gorm:"type:numeric(14,2);not null;default:0"`
	PriceOneTime float64   `gorm:"type:numeric(14,2);not null;default:0"`
	ScriptBased  bool
	Features     []Feature `gorm:"type:jsonb;serializer:json"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Plan) TableName() string {
	return "service_plans"
}

func (p Plan) Pricing() pricing.Plan {
	return pricing.Plan{
		ID:           p.ID.String(),
		Name:         p.Name,
		PriceMonthly: p.PriceMonthly,
		PriceYearly:  p.PriceYearly,
		PriceOneTime: p.PriceOneTime,
	}
}

// Pricing projects the service and its loaded plans onto the calculator input.
func (s BrandService) Pricing() pricing.Service {
	plans := make([]pricing.Plan, 0, len(s.Plans))
	for _, p := range s.Plans {
		plans = append(plans, p.Pricing())
	}
	return pricing.Service{
		BasePrice: s.BasePrice,
		GSTRate:   s.GSTRate,
		Plans:     plans,
	}
}

// FindPlan returns the loaded plan with id.
func (s BrandService) FindPlan(id string) (Plan, bool) {
	for _, p := range s.Plans {
		if p.ID.String() == id {
			return p, true
		}
	}
	return Plan{}, false
}

// FindPlanByName returns the first loaded plan called name.
func (s BrandService) FindPlanByName(name string) (Plan, bool) {
	for _, p := range s.Plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}
