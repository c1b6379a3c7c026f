package app

import (
	"github.com/gorilla/mux"
	"github.com/programstile/studio/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Budget calculator
	r.HandleFunc("/api/budget/catalog", deps.BudgetHandler.GetCatalog).Methods("GET")
	r.HandleFunc("/api/budget/discount", deps.BudgetHandler.GetDiscount).Methods("GET")
	r.HandleFunc("/api/budget/compute", deps.BudgetHandler.Compute).Methods("POST")
	r.HandleFunc("/api/budget/estimate", deps.BudgetHandler.Estimate).Methods("POST")

	// Budget request form
	r.HandleFunc("/api/budget-request", deps.BudgetRequestHandler.Submit).Methods("POST")
	r.HandleFunc("/api/validation/{field}", deps.BudgetRequestHandler.ValidateField).Methods("POST")

	// News
	r.HandleFunc("/api/news", deps.NewsHandler.GetNews).Methods("GET")

	// Site
	r.HandleFunc("/api/site", deps.SiteHandler.GetInfo).Methods("GET")
	r.HandleFunc("/api/site/route", deps.SiteHandler.GetRoute).Queries("lat", "{lat}", "lng", "{lng}").Methods("GET")
}
