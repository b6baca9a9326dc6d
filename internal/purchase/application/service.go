// Package application orchestrates purchase, refund, and upsell flows:
// discovery, selection, and directive dispatch through the response
// assembler.
package application

import (
	"context"
	"log/slog"

	catalogapp "github.com/felixgeelhaar/vocalis/internal/catalog/application"
	"github.com/felixgeelhaar/vocalis/internal/purchase/domain"
	responseapp "github.com/felixgeelhaar/vocalis/internal/response/application"
	responsedomain "github.com/felixgeelhaar/vocalis/internal/response/domain"
	shared "github.com/felixgeelhaar/vocalis/internal/shared/domain"
)

const msgNoProduct = "no resolvable product for this operation"

// Service runs monetization flows. Target resolution failures short-circuit
// with NOT_FOUND before any directive is dispatched.
type Service struct {
	catalog   *catalogapp.Service
	assembler *responseapp.Assembler
	logger    *slog.Logger
}

// NewService creates a new purchase service.
func NewService(catalog *catalogapp.Service, assembler *responseapp.Assembler, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, assembler: assembler, logger: logger}
}

// Purchase resolves the target and dispatches a Buy directive.
func (s *Service) Purchase(ctx context.Context, turn responseapp.Turn, target domain.Target) (responsedomain.Response, error) {
	product, ok := target.Resolve()
	if !ok {
		return s.notFound("purchase")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewBuy(product.ProductID))
}

// PurchaseByID dispatches a Buy directive for the product id.
func (s *Service) PurchaseByID(ctx context.Context, turn responseapp.Turn, productID string) (responsedomain.Response, error) {
	if productID == "" {
		return s.notFound("purchase")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewBuy(productID))
}

// PurchaseByName resolves the product by reference name against a freshly
// fetched catalog, then purchases it.
func (s *Service) PurchaseByName(ctx context.Context, turn responseapp.Turn, referenceName string) (responsedomain.Response, error) {
	list, err := s.catalog.Products(ctx, turn.Locale)
	if err != nil {
		return responsedomain.Response{}, err
	}
	return s.Purchase(ctx, turn, domain.ManyTarget(list.ByReferenceName(referenceName)))
}

// Refund resolves the target and dispatches a Cancel directive.
func (s *Service) Refund(ctx context.Context, turn responseapp.Turn, target domain.Target) (responsedomain.Response, error) {
	product, ok := target.Resolve()
	if !ok {
		return s.notFound("refund")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewCancel(product.ProductID))
}

// RefundByID dispatches a Cancel directive for the product id.
func (s *Service) RefundByID(ctx context.Context, turn responseapp.Turn, productID string) (responsedomain.Response, error) {
	if productID == "" {
		return s.notFound("refund")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewCancel(productID))
}

// Upsell resolves the target and dispatches an Upsell directive carrying the
// message.
func (s *Service) Upsell(ctx context.Context, turn responseapp.Turn, target domain.Target, message string) (responsedomain.Response, error) {
	product, ok := target.Resolve()
	if !ok {
		return s.notFound("upsell")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewUpsell(product.ProductID, message))
}

// UpsellByID dispatches an Upsell directive for the product id.
func (s *Service) UpsellByID(ctx context.Context, turn responseapp.Turn, productID, message string) (responsedomain.Response, error) {
	if productID == "" {
		return s.notFound("upsell")
	}
	return s.assembler.SendDirective(ctx, turn, domain.NewUpsell(productID, message))
}

func (s *Service) notFound(operation string) (responsedomain.Response, error) {
	s.logger.Error("target resolution failed", "operation", operation)
	return responsedomain.Response{}, shared.NotFound(msgNoProduct)
}
