package services

import (
	"strconv"
	"strings"

	"github.com/aesthetics360/planstudio/internal/domain/entities"
)

// PricingService derives treatment and plan prices. All computations
// are pure; nothing here mutates the plan.
type PricingService struct{}

// NewPricingService creates a new pricing service.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// MonthlyEstimate is the per-option financing line shown on the
// document. APR is carried through for display but never enters the
// payment math.
type MonthlyEstimate struct {
	Months  int     `json:"months"`
	APR     float64 `json:"apr"`
	Monthly float64 `json:"monthly"`
}

// PlanTotals is the investment summary for a plan.
type PlanTotals struct {
	Subtotal       float64           `json:"subtotal"`
	DiscountAmount float64           `json:"discountAmount"`
	Total          float64           `json:"total"`
	Financing      []MonthlyEstimate `json:"financing,omitempty"`
}

// UnitPrice returns the treatment's per-unit price, zero when unset.
func (s *PricingService) UnitPrice(t *entities.Treatment) float64 {
	if t.PricePerUnit == nil {
		return 0
	}
	return *t.PricePerUnit
}

// Quantity returns the numeric value of the item's quantity field.
// Non-numeric input parses as its leading numeric prefix, zero when
// there is none.
func (s *PricingService) Quantity(t *entities.Treatment, item *entities.TreatmentDefinitionItem) float64 {
	field := item.QuantityField()
	if field == "" {
		return 0
	}
	return parseAmount(t.QuantityValue(field))
}

// ComputePrice returns quantity times unit price for quantity-based
// items. For items without a quantity field the stored price is kept,
// since price is a direct input there.
func (s *PricingService) ComputePrice(t *entities.Treatment, item *entities.TreatmentDefinitionItem) float64 {
	if item.QuantityField() == "" {
		return t.Price
	}
	return s.Quantity(t, item) * s.UnitPrice(t)
}

// FinalPrice applies the treatment's discount percentage to its price.
func (s *PricingService) FinalPrice(t *entities.Treatment) float64 {
	return t.Price * (1 - t.Discount/100)
}

// Subtotal sums the final price of every treatment in every phase.
func (s *PricingService) Subtotal(plan *entities.Plan) float64 {
	var subtotal float64
	for pi := range plan.Phases {
		for ti := range plan.Phases[pi].Treatments {
			subtotal += s.FinalPrice(&plan.Phases[pi].Treatments[ti])
		}
	}
	return subtotal
}

// Totals computes the full investment summary: subtotal, plan-level
// discount amount, total, and the simple-division monthly estimate per
// financing option.
func (s *PricingService) Totals(plan *entities.Plan) PlanTotals {
	subtotal := s.Subtotal(plan)
	discountAmount := subtotal * plan.Investment.DiscountPercent / 100
	total := subtotal - discountAmount

	totals := PlanTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          total,
	}
	for _, opt := range plan.Investment.FinancingOptions {
		totals.Financing = append(totals.Financing, MonthlyEstimate{
			Months:  opt.Months,
			APR:     opt.APR,
			Monthly: s.MonthlyPayment(total, opt),
		})
	}
	return totals
}

// MonthlyPayment divides the total evenly over the option's months.
// APR is informational only and deliberately not amortized.
func (s *PricingService) MonthlyPayment(total float64, opt entities.FinancingOption) float64 {
	if opt.Months <= 0 {
		return 0
	}
	return total / float64(opt.Months)
}

// parseAmount extracts the leading numeric prefix of a quantity value,
// so inputs like "50", "1.5 mL", or "2 vials" all parse.
func parseAmount(value string) float64 {
	value = strings.TrimSpace(value)
	end := 0
	seenDot := false
	for end < len(value) {
		c := value[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	parsed, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0
	}
	return parsed
}
