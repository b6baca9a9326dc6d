package cli

import (
	catalogapp "github.com/felixgeelhaar/vocalis/internal/catalog/application"
	purchaseapp "github.com/felixgeelhaar/vocalis/internal/purchase/application"
	responseapp "github.com/felixgeelhaar/vocalis/internal/response/application"
)

// App holds the CLI application dependencies.
type App struct {
	// Catalog
	CatalogService *catalogapp.Service

	// Purchase flows
	PurchaseService *purchaseapp.Service

	// Response assembly
	Assembler *responseapp.Assembler

	// DefaultLocale is used when a command does not pass --locale.
	DefaultLocale string
}

// NewApp creates a new CLI application with the provided services.
func NewApp(
	catalogService *catalogapp.Service,
	purchaseService *purchaseapp.Service,
	assembler *responseapp.Assembler,
	defaultLocale string,
) *App {
	return &App{
		CatalogService:  catalogService,
		PurchaseService: purchaseService,
		Assembler:       assembler,
		DefaultLocale:   defaultLocale,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
