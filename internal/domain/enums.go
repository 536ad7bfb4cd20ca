package domain

// TravelStyle is the traveler-selected comfort tier. It scales baseline
// daily costs through Multiplier.
type TravelStyle string

const (
	StyleBudget   TravelStyle = "budget"
	StyleMidRange TravelStyle = "mid_range"
	StyleLuxury   TravelStyle = "luxury"
)

// Multiplier returns the cost scalar for the style. Unknown styles fall
// back to the mid-range multiplier.
func (s TravelStyle) Multiplier() float64 {
	switch s {
	case StyleBudget:
		return 0.7
	case StyleLuxury:
		return 1.8
	default:
		return 1.0
	}
}

type BudgetStatus string

const (
	BudgetWithin BudgetStatus = "within_budget"
	BudgetOver   BudgetStatus = "over_budget"
)

// PlanStage tracks orchestrator progress through the planning pipeline.
type PlanStage string

const (
	StagePending     PlanStage = "pending"
	StageResearching PlanStage = "researching"
	StagePlanning    PlanStage = "planning"
	StageSummarizing PlanStage = "summarizing"
	StageCompleted   PlanStage = "completed"
	StageFailed      PlanStage = "failed"
)

// Cost breakdown category keys.
const (
	CategoryFlights        = "flights"
	CategoryAccommodation  = "accommodation"
	CategoryFood           = "food"
	CategoryActivities     = "activities"
	CategoryTransportation = "transportation"
	CategoryMiscellaneous  = "miscellaneous"
)
