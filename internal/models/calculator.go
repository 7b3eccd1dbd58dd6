package models

// SIPResult is the outcome of a SIP future-value projection.
type SIPResult struct {
	TotalInvested    float64        `json:"total_invested"`
	EstimatedGains   float64        `json:"estimated_gains"`
	MaturityValue    float64        `json:"maturity_value"`
	AnnualReturn     float64        `json:"annual_return"`
	MonthlyBreakdown []MonthlyValue `json:"monthly_breakdown"`
}

// MonthlyValue is one month of a SIP projection. The breakdown is capped
// at 60 months to bound response size; later months are still part of the
// headline figures.
type MonthlyValue struct {
	Month    int     `json:"month"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
	Gains    float64 `json:"gains"`
}

// BudgetResult is a 50/30/20 split of a monthly income.
type BudgetResult struct {
	Income  float64 `json:"income"`
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// SavingsResult is a savings-goal timeline. GoalReached is false only
// when the simulation hit its 600-month cap before reaching the goal.
type SavingsResult struct {
	Months      int     `json:"months"`
	Years       float64 `json:"years"`
	TotalSaved  float64 `json:"total_saved"`
	GoalAmount  float64 `json:"goal_amount"`
	GoalReached bool    `json:"goal_reached"`
}
