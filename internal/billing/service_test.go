package billing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/palaniappa-jewellers/backoffice/internal/catalog"
	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

type memoryBillRepo struct {
	bills   map[uuid.UUID]*Bill
	nextSeq int64
}

func newMemoryBillRepo() *memoryBillRepo {
	return &memoryBillRepo{bills: make(map[uuid.UUID]*Bill)}
}

func (r *memoryBillRepo) Create(ctx context.Context, bill *Bill) error {
	clone := *bill
	r.bills[bill.ID] = &clone
	return nil
}

func (r *memoryBillRepo) Update(ctx context.Context, bill *Bill) error {
	if _, ok := r.bills[bill.ID]; !ok {
		return fmt.Errorf("%w: bill %s", httpx.ErrNotFound, bill.ID)
	}
	clone := *bill
	r.bills[bill.ID] = &clone
	return nil
}

func (r *memoryBillRepo) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, fmt.Errorf("%w: bill %s", httpx.ErrNotFound, id)
	}
	clone := *bill
	return &clone, nil
}

func (r *memoryBillRepo) List(ctx context.Context, filters ListFilters) ([]Bill, int, error) {
	var out []Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, len(out), nil
}

func (r *memoryBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.bills[id]; !ok {
		return fmt.Errorf("%w: bill %s", httpx.ErrNotFound, id)
	}
	delete(r.bills, id)
	return nil
}

func (r *memoryBillRepo) NextNumber(ctx context.Context) (int64, error) {
	r.nextSeq++
	return r.nextSeq, nil
}

type memoryCatalog struct {
	products map[int64]catalog.Product
}

func (c *memoryCatalog) Get(ctx context.Context, id int64) (catalog.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return catalog.Product{}, fmt.Errorf("%w: product %d", httpx.ErrNotFound, id)
	}
	return p, nil
}

func newTestService() (*Service, *memoryBillRepo) {
	repo := newMemoryBillRepo()
	cat := &memoryCatalog{products: map[int64]catalog.Product{
		1: testProduct(1, "Gold Chain", "PJ-CH-001", "1000.00", "4.567"),
		2: testProduct(2, "Stud", "PJ-ST-002", "500.00", "2.250"),
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(repo, cat, logger)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validInput() BillInput {
	return BillInput{
		CustomerName: "Meenakshi",
		Currency:     CurrencyINR,
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2},
		},
		AmountINR:            "1500.00",
		MakingChargesPercent: "10.0",
		GSTPercent:           "5.0",
	}
}

func TestServiceCreateRejectsEmptySelection(t *testing.T) {
	svc, repo := newTestService()

	input := validInput()
	input.Items = nil

	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.ErrorContains(t, err, "please select at least one product")
	require.Empty(t, repo.bills)
}

func TestServiceCreatePersistsComputedBill(t *testing.T) {
	svc, repo := newTestService()

	bill, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "PJ-000001", bill.Number)
	require.Equal(t, "1732.50", bill.Total)
	require.Equal(t, bill.Total, bill.PaidAmount)
	require.Equal(t, PaymentMethodCash, bill.PaymentMethod)
	require.Equal(t, "0", bill.Discount)
	require.Len(t, bill.Items, 1)

	stored, err := repo.Get(context.Background(), bill.ID)
	require.NoError(t, err)
	require.Equal(t, bill.Total, stored.Total)
}

func TestServiceCreateUnknownProduct(t *testing.T) {
	svc, repo := newTestService()

	input := validInput()
	input.Items = []ItemInput{{ProductID: 42, Quantity: 1}}

	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	require.Empty(t, repo.bills)
}

func TestServiceCreateBoundsQuantityByStock(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.Items = []ItemInput{{ProductID: 1, Quantity: 99}}

	_, err := svc.Create(context.Background(), input)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.ErrorContains(t, err, "in stock")
}

func TestServiceUpdateKeepsIdentity(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.AmountINR = "2000.00"
	updated, err := svc.Update(context.Background(), created.ID, input)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.Number, updated.Number)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "2000.00", updated.Subtotal)
}

func TestServiceUpdateMissingBill(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update(context.Background(), uuid.New(), validInput())
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceGetReturnsReconstructedConfig(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, cfg, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, CurrencyINR, cfg.Currency)
	require.Equal(t, created.Subtotal, cfg.AmountINR)
	// 150 / 1500 * 100 recovers the 10% making charge exactly here.
	require.Equal(t, "10", cfg.MakingChargesPercent)
	require.Equal(t, "5", cfg.GSTPercent)
}
