package budget_request

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/programstile/studio/pkg/budget"
	"github.com/programstile/studio/pkg/validation"
)

const (
	MsgSubmitted    = "Presupuesto enviado correctamente."
	MsgReviewFields = "Revisa los campos marcados antes de enviar."
)

var ErrInvalidContact = errors.New("invalid contact details")

type Form struct {
	Contact   validation.ContactForm
	Selection budget.Selection
}

type BudgetRequest struct {
	ID        uuid.UUID
	Contact   validation.ContactForm
	Selection budget.Selection
	// Quote is nil when the selection could not be priced; the request is still accepted.
	Quote       *budget.Quote
	SubmittedAt time.Time
}

// ValidationError carries the per-field report of a rejected submission.
type ValidationError struct {
	Report validation.Report
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Report))
	for kind := range e.Report.Failures() {
		fields = append(fields, string(kind))
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrInvalidContact, strings.Join(fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidContact
}
