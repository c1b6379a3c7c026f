package site

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/programstile/studio/internal/config"
	"github.com/programstile/studio/pkg/validation"
)

var ErrInvalidCoordinates = errors.New("Coordenadas inválidas. Ejemplo: 40.4168 / -3.7038")

const StatusRouteReady = "Ruta calculada desde las coordenadas indicadas."

type Business struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

type GalleryImage struct {
	Src     string
	Alt     string
	Caption string
}

type Waypoint struct {
	Lat float64
	Lng float64
}

type Info struct {
	Year     int
	Business Business
	Gallery  []GalleryImage
}

// ParseCoordinate accepts a decimal number surrounded by optional whitespace.
// Empty input and non-finite values are rejected.
func ParseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(validation.Normalize(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, raw)
	}
	return v, nil
}

func businessFromConfig(cfg config.Business) Business {
	return Business{Name: cfg.Name, Address: cfg.Address, Lat: cfg.Lat, Lng: cfg.Lng}
}

func galleryFromConfig(images []config.GalleryImage) []GalleryImage {
	gallery := make([]GalleryImage, 0, len(images))
	for _, img := range images {
		gallery = append(gallery, GalleryImage{Src: img.Src, Alt: img.Alt, Caption: img.Caption})
	}
	return gallery
}
