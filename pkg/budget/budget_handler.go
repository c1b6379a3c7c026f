package budget

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/programstile/studio/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ComputeRequestDTO struct {
	BasePrice   *float64 `json:"basePrice"`
	Months      *float64 `json:"months"`
	ExtrasTotal *float64 `json:"extrasTotal"`
}

type EstimateRequestDTO struct {
	Product string   `json:"product"`
	Months  float64  `json:"months"`
	Extras  []string `json:"extras,omitempty"`
}

type FormattedDTO struct {
	SubTotal string `json:"subTotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type QuoteDTO struct {
	Available      bool         `json:"available"`
	SubTotal       float64      `json:"subTotal"`
	DiscountRate   float64      `json:"discountRate"`
	DiscountAmount float64      `json:"discountAmount"`
	Total          float64      `json:"total"`
	Formatted      FormattedDTO `json:"formatted"`
}

type QuoteErrorDTO struct {
	rest.ErrorResponse
	Quote QuoteDTO `json:"quote"`
}

type DiscountDTO struct {
	Months       string  `json:"months"`
	DiscountRate float64 `json:"discountRate"`
}

type CatalogItemDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
}

type CatalogDTO struct {
	Products []CatalogItemDTO `json:"products"`
	Extras   []CatalogItemDTO `json:"extras"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

// GetCatalog godoc
// @Summary List products and extras
// @Tags Budget
// @Produce json
// @Success 200 {object} CatalogDTO
// @Router /api/budget/catalog [get]
func (handler *BudgetHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing budget catalog")
	catalog, err := handler.budgetService.Catalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, CatalogToDTO(catalog))
}

// GetDiscount godoc
// @Summary Discount rate for a contract length
// @Description Unparsable or non-positive months give a zero rate
// @Tags Budget
// @Produce json
// @Param months query string true "Contract length in months"
// @Success 200 {object} DiscountDTO
// @Router /api/budget/discount [get]
func (handler *BudgetHandler) GetDiscount(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("months")
	months, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Debugf("months %q is not a number, no discount applies", raw)
		months = math.NaN()
	}
	rest.WriteJSON(w, http.StatusOK, DiscountDTO{
		Months:       raw,
		DiscountRate: handler.budgetService.DiscountRate(r.Context(), months),
	})
}

// Compute godoc
// @Summary Compute a budget from raw amounts
// @Tags Budget
// @Accept json
// @Produce json
// @Param input body ComputeRequestDTO true "Budget input"
// @Success 200 {object} QuoteDTO
// @Failure 400 {object} QuoteErrorDTO "Invalid input"
// @Router /api/budget/compute [post]
func (handler *BudgetHandler) Compute(w http.ResponseWriter, r *http.Request) {
	log.Debug("Computing budget")
	var dto ComputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	quote, err := handler.budgetService.Compute(r.Context(), DTOToInput(dto))
	if err != nil {
		handler.writeQuoteError(w, quote, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, QuoteToDTO(quote))
}

// Estimate godoc
// @Summary Compute a budget from a catalog selection
// @Tags Budget
// @Accept json
// @Produce json
// @Param selection body EstimateRequestDTO true "Selection"
// @Success 200 {object} QuoteDTO
// @Failure 400 {object} QuoteErrorDTO "Unknown product or extra, or invalid months"
// @Router /api/budget/estimate [post]
func (handler *BudgetHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Estimating budget from selection")
	var dto EstimateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	quote, err := handler.budgetService.Estimate(r.Context(), DTOToSelection(dto))
	if err != nil {
		handler.writeQuoteError(w, quote, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, QuoteToDTO(quote))
}

func (handler *BudgetHandler) writeQuoteError(w http.ResponseWriter, quote Quote, err error) {
	resp := QuoteErrorDTO{ErrorResponse: rest.ErrorResponse{Details: err.Error()}, Quote: QuoteToDTO(quote)}

	var invalid *InvalidInputError
	switch {
	case errors.As(err, &invalid):
		resp.Error = "Invalid budget input"
		resp.Field = invalid.Field
	case errors.Is(err, ErrUnknownProduct):
		resp.Error = "Unknown product"
		resp.Field = "product"
	case errors.Is(err, ErrUnknownExtra):
		resp.Error = "Unknown extra"
		resp.Field = "extras"
	default:
		log.Errorf("failed to compute budget: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusBadRequest, resp)
}

func DTOToInput(dto ComputeRequestDTO) Input {
	return Input{
		BasePrice:   valueOrNaN(dto.BasePrice),
		Months:      valueOrNaN(dto.Months),
		ExtrasTotal: valueOrNaN(dto.ExtrasTotal),
	}
}

func DTOToSelection(dto EstimateRequestDTO) Selection {
	return Selection{ProductID: dto.Product, Months: dto.Months, ExtraIDs: dto.Extras}
}

// missing amounts are not numbers, which the calculator rejects
func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func QuoteToDTO(quote Quote) QuoteDTO {
	return QuoteDTO{
		Available:      quote.Available,
		SubTotal:       quote.Result.SubTotal,
		DiscountRate:   quote.Result.DiscountRate,
		DiscountAmount: quote.Result.DiscountAmount,
		Total:          quote.Result.Total,
		Formatted: FormattedDTO{
			SubTotal: quote.Formatted.SubTotal,
			Discount: quote.Formatted.Discount,
			Total:    quote.Formatted.Total,
		},
	}
}

func CatalogToDTO(catalog Catalog) CatalogDTO {
	dto := CatalogDTO{
		Products: make([]CatalogItemDTO, 0, len(catalog.Products)),
		Extras:   make([]CatalogItemDTO, 0, len(catalog.Extras)),
	}
	for _, p := range catalog.Products {
		dto.Products = append(dto.Products, CatalogItemDTO{ID: p.ID, Name: p.Name, Price: p.Price, FormattedPrice: FormatEUR(p.Price)})
	}
	for _, e := range catalog.Extras {
		dto.Extras = append(dto.Extras, CatalogItemDTO{ID: e.ID, Name: e.Name, Price: e.Price, FormattedPrice: FormatEUR(e.Price)})
	}
	return dto
}
