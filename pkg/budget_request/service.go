package budget_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/programstile/studio/internal/event_bus"
	"github.com/programstile/studio/internal/utils"
	"github.com/programstile/studio/pkg/budget"
	"github.com/programstile/studio/pkg/validation"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Submit(ctx context.Context, form Form) (BudgetRequest, error)
	ValidateField(ctx context.Context, kind validation.Kind, value string) (validation.Result, error)
}

type ServiceImpl struct {
	budgetService budget.BudgetService
	eventBus      *event_bus.EventBus
	clock         utils.Clock
}

func NewService(budgetService budget.BudgetService, eventBus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{budgetService: budgetService, eventBus: eventBus, clock: clock}
}

// Submit accepts a budget request once every contact field is valid. A selection the
// calculator rejects does not block the submission, it only leaves the quote empty.
func (s *ServiceImpl) Submit(ctx context.Context, form Form) (BudgetRequest, error) {
	report := validation.ValidateContact(form.Contact)
	if !report.OK() {
		return BudgetRequest{}, &ValidationError{Report: report}
	}

	var quote *budget.Quote
	q, err := s.budgetService.Estimate(ctx, form.Selection)
	switch {
	case err == nil:
		quote = &q
	case errors.Is(err, budget.ErrInvalidInput), errors.Is(err, budget.ErrUnknownProduct), errors.Is(err, budget.ErrUnknownExtra):
		log.Infof("budget request submitted without a quote: %v", err)
	default:
		return BudgetRequest{}, fmt.Errorf("failed to estimate budget: %w", err)
	}

	request := BudgetRequest{
		ID:          uuid.New(),
		Contact:     normalizedContact(form.Contact),
		Selection:   form.Selection,
		Quote:       quote,
		SubmittedAt: s.clock.Now(),
	}

	event := event_bus.NewEvent(ctx, event_bus.BudgetRequestSubmittedType, request.SubmittedAt, toEvent(request))
	if err := s.eventBus.Publish(event); err != nil {
		return BudgetRequest{}, fmt.Errorf("failed to publish budget request: %w", err)
	}
	return request, nil
}

func (s *ServiceImpl) ValidateField(ctx context.Context, kind validation.Kind, value string) (validation.Result, error) {
	return validation.Validate(kind, value)
}

func normalizedContact(c validation.ContactForm) validation.ContactForm {
	return validation.ContactForm{
		Name:          validation.Normalize(c.Name),
		Surname:       validation.Normalize(c.Surname),
		Phone:         validation.Normalize(c.Phone),
		Email:         validation.Normalize(c.Email),
		TermsAccepted: c.TermsAccepted,
	}
}

func toEvent(r BudgetRequest) event_bus.BudgetRequestSubmitted {
	e := event_bus.BudgetRequestSubmitted{
		ID:          r.ID.String(),
		Name:        r.Contact.Name,
		Surname:     r.Contact.Surname,
		Email:       r.Contact.Email,
		Phone:       r.Contact.Phone,
		ProductID:   r.Selection.ProductID,
		Months:      r.Selection.Months,
		ExtraIDs:    r.Selection.ExtraIDs,
		SubmittedAt: r.SubmittedAt,
	}
	if r.Quote != nil {
		e.HasQuote = true
		e.Total = r.Quote.Result.Total
	}
	return e
}
