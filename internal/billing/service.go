package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/palaniappa-jewellers/backoffice/internal/catalog"
	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

// CatalogLookup is the slice of the catalog the billing flow needs.
type CatalogLookup interface {
	Get(ctx context.Context, id int64) (catalog.Product, error)
}

type Service struct {
	repo    Repository
	catalog CatalogLookup
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, catalog CatalogLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Create computes and persists a new bill from the admin's input.
func (s *Service) Create(ctx context.Context, input BillInput) (*Bill, error) {
	sel, err := s.buildSelection(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	seq, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	bill := s.assemble(input, sel)
	bill.ID = uuid.New()
	bill.Number = fmt.Sprintf("PJ-%06d", seq)
	bill.CreatedAt = now
	bill.UpdatedAt = now

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}
	s.logger.Info("bill created",
		slog.String("bill", bill.Number),
		slog.String("currency", string(bill.Currency)),
		slog.String("total", bill.Total))
	return bill, nil
}

// Update recomputes an existing bill in place, keeping its number and
// creation time.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input BillInput) (*Bill, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sel, err := s.buildSelection(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	bill := s.assemble(input, sel)
	bill.ID = existing.ID
	bill.Number = existing.Number
	bill.CreatedAt = existing.CreatedAt
	bill.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, bill); err != nil {
		return nil, err
	}
	s.logger.Info("bill updated", slog.String("bill", bill.Number))
	return bill, nil
}

// Get loads a bill together with its reconstructed edit configuration.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, Config, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, Config{}, err
	}
	return bill, ReconstructConfig(*bill), nil
}

func (s *Service) List(ctx context.Context, filters ListFilters) ([]Bill, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// buildSelection resolves the requested products against the catalog.
// An empty selection is rejected before anything is persisted.
func (s *Service) buildSelection(ctx context.Context, items []ItemInput) (*Selection, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: please select at least one product", httpx.ErrValidation)
	}
	sel := NewSelection()
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", httpx.ErrValidation)
		}
		product, err := s.catalog.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock > 0 && item.Quantity > product.Stock {
			return nil, fmt.Errorf("%w: only %d of %s in stock", httpx.ErrValidation, product.Stock, product.Name)
		}
		sel.AddWithQuantity(product, item.Quantity)
	}
	return sel, nil
}

// assemble runs the calculator and fills the bill-level constants of
// the counter flow: no separate discount line, paid in full, cash.
func (s *Service) assemble(input BillInput, sel *Selection) *Bill {
	totals, lines := Calculate(input.config(), sel)
	return &Bill{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Currency:        input.Currency,
		Subtotal:        totals.Subtotal,
		MakingCharges:   totals.MakingCharges,
		GST:             totals.GST,
		VAT:             totals.VAT,
		Discount:        "0",
		Total:           totals.Total,
		PaidAmount:      totals.Total,
		PaymentMethod:   PaymentMethodCash,
		Items:           lines,
	}
}
