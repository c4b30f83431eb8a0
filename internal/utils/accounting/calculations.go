package accounting

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the scale every persisted money column is stored at.
const MoneyPlaces int32 = domain.MoneyPlaces

// StandardCostDivisor converts material throughput into the expected electricity cost.
var StandardCostDivisor = decimal.RequireFromString("2.37")

var hundred = decimal.NewFromInt(100)

var roleMultipliers = map[domain.StaffRole]decimal.Decimal{
	domain.RoleManager:  decimal.RequireFromString("3.0"),
	domain.RoleOperator: decimal.RequireFromString("4.0"),
	domain.RolePacker:   decimal.RequireFromString("3.0"),
}

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// StandardElectricityCost is (materialUsed x rate) / 2.37, unrounded.
func StandardElectricityCost(materialUsed, rate decimal.Decimal) decimal.Decimal {
	return materialUsed.Mul(rate).DivRound(StandardCostDivisor, 16)
}

// OperationAmount is what the customer is owed for an operation.
func OperationAmount(materialUsed, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(materialUsed)
}

// ElectricityVariance compares the standard cost with the metered cost.
// A reading without a cost counts as zero.
func ElectricityVariance(standardCost decimal.Decimal, meterCost *decimal.Decimal) decimal.Decimal {
	cost := decimal.Zero
	if meterCost != nil {
		cost = *meterCost
	}
	return standardCost.Sub(cost)
}

// RoleMultiplier returns the per-unit accrual rate for a role.
func RoleMultiplier(role domain.StaffRole) (decimal.Decimal, bool) {
	m, ok := roleMultipliers[role]
	return m, ok
}

// AccrualIncrement is materialUsed x the role multiplier, or zero for unknown roles.
func AccrualIncrement(role domain.StaffRole, materialUsed decimal.Decimal) decimal.Decimal {
	m, ok := RoleMultiplier(role)
	if !ok {
		return decimal.Zero
	}
	return materialUsed.Mul(m)
}

// Product returns a x b, or nil when either operand is missing.
func Product(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}
	p := RoundMoney(a.Mul(*b))
	return &p
}

// SumAll returns the sum of parts, or nil when any part is missing.
func SumAll(parts ...*decimal.Decimal) *decimal.Decimal {
	sum := decimal.Zero
	for _, p := range parts {
		if p == nil {
			return nil
		}
		sum = sum.Add(*p)
	}
	return &sum
}

// PelletsProfit is price minus both upstream totals, missing totals counting as zero.
// It is nil when price is nil or either parent did not resolve.
func PelletsProfit(price *decimal.Decimal, intake *domain.FlakesIntake, cost *domain.FlakesCost) *decimal.Decimal {
	if price == nil || intake == nil || cost == nil {
		return nil
	}
	total := decimal.Zero
	if intake.TotalCost1 != nil {
		total = total.Add(*intake.TotalCost1)
	}
	if cost.TotalCost2 != nil {
		total = total.Add(*cost.TotalCost2)
	}
	profit := price.Sub(total)
	return &profit
}

// MaterialLoss returns quantity - (used + bangori) and that loss as a percentage
// of quantity. The percentage is zero when quantity is zero.
func MaterialLoss(quantity, used, bangori decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	lost := quantity.Sub(used.Add(bangori))
	if quantity.IsZero() {
		return lost, decimal.Zero
	}
	return lost, RoundMoney(lost.Div(quantity).Mul(hundred))
}
