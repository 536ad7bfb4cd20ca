package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

func TestBudgetIndicator(t *testing.T) {
	assert.Contains(t, BudgetIndicator(domain.BudgetWithin), "WITHIN BUDGET")
	assert.Contains(t, BudgetIndicator(domain.BudgetOver), "OVER BUDGET")
	assert.Contains(t, BudgetIndicator(domain.BudgetStatus("bogus")), "UNKNOWN")
}

func TestHeader_UppercasesAndUnderlines(t *testing.T) {
	out := Header("Cost breakdown")
	assert.Contains(t, out, "COST BREAKDOWN")
	assert.Contains(t, out, "─")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1980.00", Money(1980))
	assert.Equal(t, "$0.50", Money(0.5))
}
