package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/egoavara/cargo-i18n/cmd"
	"github.com/egoavara/cargo-i18n/internal/build"
	"github.com/egoavara/cargo-i18n/internal/config"
	"github.com/egoavara/cargo-i18n/internal/i18n"
)

//go:embed locales/*.json locales/*.toml
var localeFS embed.FS

func main() {
	catalog := loadCatalog()
	cmd.Execute(context.Background(), catalog, build.NewPreflight(os.Stdout, catalog))
}

// loadCatalog selects the catalog for the configured or system locale. Only a
// corrupt catalog stops the process; anything else falls back to source text.
func loadCatalog() *i18n.Catalog {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.NewConfig()
	}

	catalog, err := i18n.Select(localeFS, "locales", i18n.DetectLocales(cfg.Locale)...)
	switch {
	case errors.Is(err, i18n.ErrCatalogCorrupt):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitFailure)
	case err != nil && !errors.Is(err, i18n.ErrNoCatalog):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return catalog
}
