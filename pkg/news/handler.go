package news

import (
	"net/http"

	"github.com/programstile/studio/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ItemDTO struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Summary     string `json:"summary"`
}

type FeedDTO struct {
	Items    []ItemDTO `json:"items"`
	Status   string    `json:"status,omitempty"`
	Fallback bool      `json:"fallback"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetNews godoc
// @Summary Latest studio news
// @Description Returns the news feed, or the built-in items when the source cannot be loaded
// @Tags News
// @Produce json
// @Success 200 {object} FeedDTO
// @Router /api/news [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting news")
	feed, err := h.service.Latest(r.Context())
	if err != nil {
		log.Errorf("failed to get news: %v", err)
		rest.WriteError(w, http.StatusServiceUnavailable, rest.ErrorResponse{Error: StatusLoadFailed, Details: err.Error()})
		return
	}
	rest.WriteJSON(w, http.StatusOK, FeedToDTO(feed))
}

func FeedToDTO(feed Feed) FeedDTO {
	items := make([]ItemDTO, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, ItemDTO{
			Title:       item.Title,
			Date:        item.Date,
			DisplayDate: DisplayDate(item.Date),
			Summary:     item.Summary,
		})
	}
	return FeedDTO{Items: items, Status: feed.Status, Fallback: feed.Fallback}
}
