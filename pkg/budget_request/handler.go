package budget_request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/programstile/studio/internal/rest"
	"github.com/programstile/studio/pkg/budget"
	"github.com/programstile/studio/pkg/validation"
	log "github.com/sirupsen/logrus"
)

type BudgetRequestDTO struct {
	Name    string   `json:"name"`
	Surname string   `json:"surname"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Terms   bool     `json:"terms"`
	Product string   `json:"product"`
	Months  float64  `json:"months"`
	Extras  []string `json:"extras,omitempty"`
}

type SubmittedDTO struct {
	ID          string           `json:"id"`
	Message     string           `json:"message"`
	SubmittedAt time.Time        `json:"submittedAt"`
	Quote       *budget.QuoteDTO `json:"quote,omitempty"`
}

type FieldResultDTO struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type RejectedDTO struct {
	Error  string                    `json:"error"`
	Fields map[string]FieldResultDTO `json:"fields"`
}

type FieldValueDTO struct {
	Value   string `json:"value"`
	Checked *bool  `json:"checked,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// Submit godoc
// @Summary Submit a budget request
// @Description Validates the contact fields, prices the selection and acknowledges the request
// @Tags BudgetRequest
// @Accept json
// @Produce json
// @Param request body BudgetRequestDTO true "Budget request"
// @Success 201 {object} SubmittedDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request body"
// @Failure 422 {object} RejectedDTO "Invalid contact fields"
// @Router /api/budget-request [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log.Debug("Submitting budget request")
	var dto BudgetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	request, err := handler.service.Submit(r.Context(), DTOToForm(dto))
	if err != nil {
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			rest.WriteJSON(w, http.StatusUnprocessableEntity, ReportToDTO(invalid.Report))
			return
		}
		log.Errorf("failed to submit budget request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, RequestToDTO(request))
}

// ValidateField godoc
// @Summary Validate a single contact field
// @Tags BudgetRequest
// @Accept json
// @Produce json
// @Param field path string true "name, surname, phone, email or terms"
// @Param value body FieldValueDTO true "Field value"
// @Success 200 {object} FieldResultDTO
// @Failure 404 {object} rest.ErrorResponse "Unknown field"
// @Router /api/validation/{field} [post]
func (handler *Handler) ValidateField(w http.ResponseWriter, r *http.Request) {
	kind, err := validation.ParseKind(mux.Vars(r)["field"])
	if err != nil {
		rest.WriteError(w, http.StatusNotFound, rest.ErrorResponse{Error: "Unknown field", Details: err.Error()})
		return
	}

	var dto FieldValueDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	value := dto.Value
	if kind == validation.KindTerms && dto.Checked != nil {
		value = strconv.FormatBool(*dto.Checked)
	}

	result, err := handler.service.ValidateField(r.Context(), kind, value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ResultToDTO(result))
}

func DTOToForm(dto BudgetRequestDTO) Form {
	return Form{
		Contact: validation.ContactForm{
			Name:          dto.Name,
			Surname:       dto.Surname,
			Phone:         dto.Phone,
			Email:         dto.Email,
			TermsAccepted: dto.Terms,
		},
		Selection: budget.Selection{
			ProductID: dto.Product,
			Months:    dto.Months,
			ExtraIDs:  dto.Extras,
		},
	}
}

func RequestToDTO(request BudgetRequest) SubmittedDTO {
	dto := SubmittedDTO{
		ID:          request.ID.String(),
		Message:     MsgSubmitted,
		SubmittedAt: request.SubmittedAt,
	}
	if request.Quote != nil {
		quote := budget.QuoteToDTO(*request.Quote)
		dto.Quote = &quote
	}
	return dto
}

func ResultToDTO(result validation.Result) FieldResultDTO {
	return FieldResultDTO{OK: result.OK, Message: result.Message, Code: result.Code}
}

func ReportToDTO(report validation.Report) RejectedDTO {
	fields := make(map[string]FieldResultDTO, len(report))
	for kind, result := range report {
		fields[string(kind)] = ResultToDTO(result)
	}
	return RejectedDTO{Error: MsgReviewFields, Fields: fields}
}
