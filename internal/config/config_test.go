package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should use defaults when the file is missing", func(t *testing.T) {
		// when
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.NoError(t, err)
		assert.Equal(t, ":8181", cfg.Server.Addr)
		assert.True(t, cfg.Frontend.Enabled)
		assert.Equal(t, 6, cfg.News.Limit)
		assert.Equal(t, "ProgramStile Studio", cfg.Business.Name)
		assert.InDelta(t, 40.4168, cfg.Business.Lat, 1e-9)
		assert.Len(t, cfg.Catalog.Products, 3)
		assert.Len(t, cfg.Catalog.Extras, 4)
		assert.Len(t, cfg.Gallery, 6)
	})

	t.Run("should override defaults from the file", func(t *testing.T) {
		// given
		path := writeConfig(t, `
server:
  addr: ":9090"
news:
  limit: 3
  sourceurl: "https://example.com/news.json"
catalog:
  products:
    - id: "audit"
      name: "Auditoría"
      price: 300
`)

		// when
		cfg, err := Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, 3, cfg.News.Limit)
		assert.Equal(t, "https://example.com/news.json", cfg.News.SourceURL)
		assert.Equal(t, 5, cfg.News.TimeoutSeconds)
		require.Len(t, cfg.Catalog.Products, 1)
		assert.Equal(t, CatalogItem{ID: "audit", Name: "Auditoría", Price: 300}, cfg.Catalog.Products[0])
		assert.Len(t, cfg.Catalog.Extras, 4)
	})

	t.Run("should let environment variables win over the file", func(t *testing.T) {
		// given
		path := writeConfig(t, "server:\n  addr: \":9090\"\n")
		t.Setenv("STUDIO_SERVER_ADDR", ":7070")
		t.Setenv("STUDIO_NEWS_SOURCEURL", "http://localhost/news.json")

		// when
		cfg, err := Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Addr)
		assert.Equal(t, "http://localhost/news.json", cfg.News.SourceURL)
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		path := writeConfig(t, "server: [unclosed")

		_, err := Load(path)

		assert.Error(t, err)
	})
}
