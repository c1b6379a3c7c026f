package event_bus

import "time"

const BudgetRequestSubmittedType EventType = "budget_request.submitted"

type BudgetRequestSubmitted struct {
	ID          string
	Name        string
	Surname     string
	Email       string
	Phone       string
	ProductID   string
	Months      float64
	ExtraIDs    []string
	Total       float64
	HasQuote    bool
	SubmittedAt time.Time
}
