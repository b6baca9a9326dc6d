package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/vocalis/internal/catalog/domain"
	shared "github.com/felixgeelhaar/vocalis/internal/shared/domain"
)

// Service answers product catalog queries. Every query fetches the catalog
// fresh from the monetization service; staleness is acceptable only within a
// single turn.
type Service struct {
	source domain.Source
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(source domain.Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// Products fetches the full catalog for the locale. Transport and backend
// failures are logged here and surface as BAD_REQUEST.
func (s *Service) Products(ctx context.Context, locale string) (domain.List, error) {
	list, err := s.source.FetchCatalog(ctx, locale)
	if err != nil {
		s.logger.Error("catalog fetch failed", "locale", locale, "error", err)
		return nil, shared.BadRequest("monetization service call failed", err)
	}
	return list, nil
}

// ConsumableProducts returns the consumable products for the locale.
func (s *Service) ConsumableProducts(ctx context.Context, locale string) (domain.List, error) {
	list, err := s.Products(ctx, locale)
	if err != nil {
		return nil, err
	}
	return list.Consumables(), nil
}

// EntitledProducts returns the products the user already owns.
func (s *Service) EntitledProducts(ctx context.Context, locale string) (domain.List, error) {
	list, err := s.Products(ctx, locale)
	if err != nil {
		return nil, err
	}
	return list.Entitled(), nil
}

// PurchasableProducts returns the products that can currently be bought.
func (s *Service) PurchasableProducts(ctx context.Context, locale string) (domain.List, error) {
	list, err := s.Products(ctx, locale)
	if err != nil {
		return nil, err
	}
	return list.Purchasable(), nil
}

// SpeakableEntitledProducts returns the user's entitled products as a single
// spoken phrase.
func (s *Service) SpeakableEntitledProducts(ctx context.Context, locale string) (string, error) {
	list, err := s.EntitledProducts(ctx, locale)
	if err != nil {
		return "", err
	}
	return list.Speakable(), nil
}
