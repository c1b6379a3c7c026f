package news

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusLoadFailed = "No se pudieron cargar las noticias."
	StatusLocal      = "Mostrando noticias de ejemplo (modo local)."
)

const DefaultLimit = 6

type Item struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// Payload is the document served by the news source.
type Payload struct {
	Items []Item `json:"items"`
}

type Feed struct {
	Items []Item
	// Status is the note shown under the list, empty when the source was loaded.
	Status   string
	Fallback bool
}

//go:embed fallback.json
var fallbackJSON []byte

func FallbackItems() []Item {
	var payload Payload
	if err := json.Unmarshal(fallbackJSON, &payload); err != nil {
		panic(fmt.Sprintf("invalid embedded news: %v", err))
	}
	return payload.Items
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// DisplayDate renders an ISO date as "05 de marzo de 2024". Dates that cannot be parsed
// are returned unchanged.
func DisplayDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
		}
	}
	return raw
}
