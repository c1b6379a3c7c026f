package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const EnvPrefix = "STUDIO_"

type Application struct {
	Server   Server         `koanf:"server"`
	Frontend Frontend       `koanf:"frontend"`
	News     News           `koanf:"news"`
	Business Business       `koanf:"business"`
	Catalog  Catalog        `koanf:"catalog"`
	Gallery  []GalleryImage `koanf:"gallery"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type News struct {
	// SourceURL is the JSON feed to load. When empty the fallback items are served.
	SourceURL      string `koanf:"sourceurl"`
	TimeoutSeconds int    `koanf:"timeoutseconds"`
	Limit          int    `koanf:"limit"`
}

type Business struct {
	Name    string  `koanf:"name"`
	Address string  `koanf:"address"`
	Lat     float64 `koanf:"lat"`
	Lng     float64 `koanf:"lng"`
}

type Catalog struct {
	Products []CatalogItem `koanf:"products"`
	Extras   []CatalogItem `koanf:"extras"`
}

type CatalogItem struct {
	ID    string  `koanf:"id"`
	Name  string  `koanf:"name"`
	Price float64 `koanf:"price"`
}

type GalleryImage struct {
	Src     string `koanf:"src"`
	Alt     string `koanf:"alt"`
	Caption string `koanf:"caption"`
}

func Defaults() Application {
	return Application{
		Server: Server{
			Addr: ":8181",
		},
		Frontend: Frontend{
			Enabled: true,
			Dir:     "frontend",
		},
		News: News{
			SourceURL:      "",
			TimeoutSeconds: 5,
			Limit:          6,
		},
		Business: Business{
			Name:    "ProgramStile Studio",
			Address: "Madrid, España",
			Lat:     40.4168,
			Lng:     -3.7038,
		},
		Catalog: Catalog{
			Products: []CatalogItem{
				{ID: "landing", Name: "Landing page", Price: 450},
				{ID: "corporate", Name: "Web corporativa", Price: 1200},
				{ID: "ecommerce", Name: "Tienda online", Price: 2500},
			},
			Extras: []CatalogItem{
				{ID: "seo", Name: "Posicionamiento SEO", Price: 150},
				{ID: "multilanguage", Name: "Multi-idioma", Price: 200},
				{ID: "maintenance", Name: "Mantenimiento anual", Price: 300},
				{ID: "blog", Name: "Blog integrado", Price: 120},
			},
		},
		Gallery: []GalleryImage{
			{Src: "images/gallery-1.svg", Alt: "Proyecto 1", Caption: "Landing moderna"},
			{Src: "images/gallery-2.svg", Alt: "Proyecto 2", Caption: "Dashboard UI"},
			{Src: "images/gallery-3.svg", Alt: "Proyecto 3", Caption: "E-commerce"},
			{Src: "images/gallery-4.svg", Alt: "Proyecto 4", Caption: "Formulario y validación"},
			{Src: "images/gallery-5.svg", Alt: "Proyecto 5", Caption: "Mapa y rutas"},
			{Src: "images/gallery-6.svg", Alt: "Proyecto 6", Caption: "Componentes reusables"},
		},
	}
}

// Load layers configuration: built-in defaults, then the YAML file at path (optional),
// then STUDIO_* environment variables, e.g. STUDIO_NEWS_SOURCEURL for news.sourceurl.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
