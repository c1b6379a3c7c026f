package site

import (
	"context"

	"github.com/programstile/studio/internal/config"
	"github.com/programstile/studio/internal/utils"
)

type Service interface {
	Info(ctx context.Context) Info
	Route(ctx context.Context, latRaw, lngRaw string) ([]Waypoint, error)
}

type ServiceImpl struct {
	business Business
	gallery  []GalleryImage
	clock    utils.Clock
}

func NewService(cfg config.Application, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		business: businessFromConfig(cfg.Business),
		gallery:  galleryFromConfig(cfg.Gallery),
		clock:    clock,
	}
}

func (s *ServiceImpl) Info(ctx context.Context) Info {
	return Info{
		Year:     s.clock.Now().Year(),
		Business: s.business,
		Gallery:  s.gallery,
	}
}

// Route returns the waypoints from the given origin to the business.
func (s *ServiceImpl) Route(ctx context.Context, latRaw, lngRaw string) ([]Waypoint, error) {
	lat, err := ParseCoordinate(latRaw)
	if err != nil {
		return nil, err
	}
	lng, err := ParseCoordinate(lngRaw)
	if err != nil {
		return nil, err
	}
	return []Waypoint{
		{Lat: lat, Lng: lng},
		{Lat: s.business.Lat, Lng: s.business.Lng},
	}, nil
}
