package domain

import "math"

// CostBreakdown maps cost categories to amounts with derived totals.
// TotalCost always equals the sum of Breakdown entries.
type CostBreakdown struct {
	Breakdown     map[string]float64 `json:"breakdown"`
	TotalCost     float64            `json:"total_cost"`
	CostPerPerson float64            `json:"cost_per_person"`
	CostPerDay    float64            `json:"cost_per_day"`
	Travelers     int                `json:"travelers"`
	Currency      string             `json:"currency"`
}

// Reconciled reports whether TotalCost matches the breakdown sum within
// the rounding tolerance.
func (c CostBreakdown) Reconciled() bool {
	sum := 0.0
	for _, v := range c.Breakdown {
		sum += v
	}
	return math.Abs(c.TotalCost-Round2(sum)) < 0.01
}

// BudgetCompliance is the computed relationship between total estimated
// cost and the requested budget ceiling.
type BudgetCompliance struct {
	WithinBudget         bool         `json:"within_budget"`
	Budget               float64      `json:"budget"`
	TotalCost            float64      `json:"total_cost"`
	Remaining            float64      `json:"remaining"`
	CompliancePercentage float64      `json:"compliance_percentage"`
	Status               BudgetStatus `json:"status"`
}

// EvaluateBudget compares a total cost against the budget ceiling.
func EvaluateBudget(budget, totalCost float64) BudgetCompliance {
	within := totalCost <= budget
	status := BudgetWithin
	if !within {
		status = BudgetOver
	}
	return BudgetCompliance{
		WithinBudget:         within,
		Budget:               budget,
		TotalCost:            totalCost,
		Remaining:            Round2(budget - totalCost),
		CompliancePercentage: Round2(totalCost / budget * 100),
		Status:               status,
	}
}
