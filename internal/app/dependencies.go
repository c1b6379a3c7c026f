package app

import (
	"github.com/programstile/studio/internal/config"
	"github.com/programstile/studio/internal/event_bus"
	"github.com/programstile/studio/internal/utils"
	"github.com/programstile/studio/pkg/budget"
	"github.com/programstile/studio/pkg/budget_request"
	"github.com/programstile/studio/pkg/news"
	"github.com/programstile/studio/pkg/site"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock    utils.Clock
	EventBus *event_bus.EventBus

	CatalogRepo   budget.CatalogRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	BudgetRequestService *budget_request.ServiceImpl
	BudgetRequestHandler *budget_request.Handler

	NewsService *news.ServiceImpl
	NewsHandler *news.Handler

	SiteService *site.ServiceImpl
	SiteHandler *site.Handler

	unsubscribers []func()
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()

	deps.CatalogRepo = budget.NewCatalogRepo(cfg.Catalog)
	deps.BudgetService = budget.NewBudgetServiceImpl(deps.CatalogRepo)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.BudgetRequestService = budget_request.NewService(deps.BudgetService, deps.EventBus, deps.Clock)
	deps.BudgetRequestHandler = budget_request.NewHandler(deps.BudgetRequestService)
	deps.unsubscribers = append(deps.unsubscribers, budget_request.SubscribeNotifier(deps.EventBus))

	deps.NewsService = news.NewService(cfg.News)
	deps.NewsHandler = news.NewHandler(deps.NewsService)

	deps.SiteService = site.NewService(cfg, deps.Clock)
	deps.SiteHandler = site.NewHandler(deps.SiteService)

	return deps
}

func (d *Dependencies) Close() {
	for _, unsubscribe := range d.unsubscribers {
		unsubscribe()
	}
	d.unsubscribers = nil
}
