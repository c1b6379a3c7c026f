package budget_request

import (
	"github.com/programstile/studio/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// SubscribeNotifier logs every submitted budget request. Requests are not stored.
func SubscribeNotifier(bus *event_bus.EventBus) (unsubscribe func()) {
	return event_bus.SubscribeTyped(bus, event_bus.BudgetRequestSubmittedType,
		func(e event_bus.EventT[event_bus.BudgetRequestSubmitted]) error {
			fields := log.Fields{
				"id":      e.Data.ID,
				"email":   e.Data.Email,
				"product": e.Data.ProductID,
				"months":  e.Data.Months,
			}
			if e.Data.HasQuote {
				fields["total"] = e.Data.Total
			}
			log.WithFields(fields).Info("Budget request received")
			return nil
		})
}
