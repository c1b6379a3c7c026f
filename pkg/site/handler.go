package site

import (
	"errors"
	"net/http"

	"github.com/programstile/studio/internal/rest"
	log "github.com/sirupsen/logrus"
)

type BusinessDTO struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type GalleryImageDTO struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type InfoDTO struct {
	Year     int               `json:"year"`
	Business BusinessDTO       `json:"business"`
	Gallery  []GalleryImageDTO `json:"gallery"`
}

type WaypointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteDTO struct {
	Waypoints []WaypointDTO `json:"waypoints"`
	Status    string        `json:"status"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetInfo godoc
// @Summary Site information
// @Description Footer year, business location and gallery images
// @Tags Site
// @Produce json
// @Success 200 {object} InfoDTO
// @Router /api/site [get]
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, InfoToDTO(h.service.Info(r.Context())))
}

// GetRoute godoc
// @Summary Route waypoints to the studio
// @Tags Site
// @Produce json
// @Param lat query string true "Origin latitude"
// @Param lng query string true "Origin longitude"
// @Success 200 {object} RouteDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid coordinates"
// @Router /api/site/route [get]
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	waypoints, err := h.service.Route(r.Context(), query.Get("lat"), query.Get("lng"))
	if err != nil {
		if errors.Is(err, ErrInvalidCoordinates) {
			log.Debugf("route rejected: %v", err)
			rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{Error: ErrInvalidCoordinates.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := RouteDTO{Waypoints: make([]WaypointDTO, 0, len(waypoints)), Status: StatusRouteReady}
	for _, wp := range waypoints {
		dto.Waypoints = append(dto.Waypoints, WaypointDTO{Lat: wp.Lat, Lng: wp.Lng})
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func InfoToDTO(info Info) InfoDTO {
	gallery := make([]GalleryImageDTO, 0, len(info.Gallery))
	for _, img := range info.Gallery {
		gallery = append(gallery, GalleryImageDTO{Src: img.Src, Alt: img.Alt, Caption: img.Caption})
	}
	return InfoDTO{
		Year: info.Year,
		Business: BusinessDTO{
			Name:    info.Business.Name,
			Address: info.Business.Address,
			Lat:     info.Business.Lat,
			Lng:     info.Business.Lng,
		},
		Gallery: gallery,
	}
}
