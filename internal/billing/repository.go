package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/palaniappa-jewellers/backoffice/internal/platform/db"
	"github.com/palaniappa-jewellers/backoffice/internal/platform/httpx"
)

// ListFilters pages and narrows bill history queries.
type ListFilters struct {
	Currency Currency
	Search   string
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
	Get(ctx context.Context, id uuid.UUID) (*Bill, error)
	List(ctx context.Context, filters ListFilters) ([]Bill, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	NextNumber(ctx context.Context) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const billColumns = `id, number, customer_name, customer_email, customer_phone, customer_address,
	currency, subtotal::text, making_charges::text, gst::text, vat::text, discount::text,
	total::text, paid_amount::text, payment_method, created_at, updated_at`

func (r *repository) Create(ctx context.Context, bill *Bill) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `INSERT INTO bills
			(id, number, customer_name, customer_email, customer_phone, customer_address,
			 currency, subtotal, making_charges, gst, vat, discount, total, paid_amount,
			 payment_method, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7,
			 $8::numeric, $9::numeric, $10::numeric, $11::numeric, $12::numeric,
			 $13::numeric, $14::numeric, $15, $16, $16)`
		if _, err := tx.Exec(ctx, query,
			bill.ID, bill.Number, bill.CustomerName, bill.CustomerEmail,
			bill.CustomerPhone, bill.CustomerAddress, bill.Currency,
			bill.Subtotal, bill.MakingCharges, bill.GST, bill.VAT, bill.Discount,
			bill.Total, bill.PaidAmount, bill.PaymentMethod, bill.CreatedAt,
		); err != nil {
			return fmt.Errorf("billing: insert bill: %w", err)
		}
		return insertItems(ctx, tx, bill.ID, bill.Items)
	})
}

func (r *repository) Update(ctx context.Context, bill *Bill) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		const query = `UPDATE bills SET
			customer_name = $1, customer_email = $2, customer_phone = $3, customer_address = $4,
			currency = $5, subtotal = $6::numeric, making_charges = $7::numeric,
			gst = $8::numeric, vat = $9::numeric, discount = $10::numeric,
			total = $11::numeric, paid_amount = $12::numeric, payment_method = $13,
			updated_at = $14
			WHERE id = $15`
		tag, err := tx.Exec(ctx, query,
			bill.CustomerName, bill.CustomerEmail, bill.CustomerPhone, bill.CustomerAddress,
			bill.Currency, bill.Subtotal, bill.MakingCharges, bill.GST, bill.VAT,
			bill.Discount, bill.Total, bill.PaidAmount, bill.PaymentMethod,
			bill.UpdatedAt, bill.ID,
		)
		if err != nil {
			return fmt.Errorf("billing: update bill: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: bill %s", httpx.ErrNotFound, bill.ID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM bill_items WHERE bill_id = $1`, bill.ID); err != nil {
			return fmt.Errorf("billing: clear bill items: %w", err)
		}
		return insertItems(ctx, tx, bill.ID, bill.Items)
	})
}

func insertItems(ctx context.Context, tx pgx.Tx, billID uuid.UUID, items []LineItem) error {
	const query = `INSERT INTO bill_items
		(bill_id, position, product_id, product_name, quantity, price_inr, price_bhd,
		 gross_weight, net_weight, making_charges, discount, sgst, cgst, vat, total)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9::numeric,
		 $10::numeric, $11::numeric, $12::numeric, $13::numeric, $14::numeric, $15::numeric)`
	for i, item := range items {
		if _, err := tx.Exec(ctx, query,
			billID, i, item.ProductID, item.ProductName, item.Quantity,
			item.PriceINR, item.PriceBHD, item.GrossWeight, item.NetWeight,
			item.MakingCharges, item.Discount, item.SGST, item.CGST, item.VAT, item.Total,
		); err != nil {
			return fmt.Errorf("billing: insert bill item %d: %w", i, err)
		}
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id)
	bill, err := scanBill(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: bill %s", httpx.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.Items = items
	return bill, nil
}

func (r *repository) loadItems(ctx context.Context, billID uuid.UUID) ([]LineItem, error) {
	const query = `SELECT product_id, product_name, quantity, price_inr::text, price_bhd::text,
		gross_weight::text, net_weight::text, making_charges::text, discount::text,
		sgst::text, cgst::text, vat::text, total::text
		FROM bill_items WHERE bill_id = $1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("billing: load bill items: %w", err)
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity,
			&item.PriceINR, &item.PriceBHD, &item.GrossWeight, &item.NetWeight,
			&item.MakingCharges, &item.Discount, &item.SGST, &item.CGST,
			&item.VAT, &item.Total); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Bill, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}

	if filters.Currency != "" {
		args = append(args, filters.Currency)
		where += fmt.Sprintf(` AND currency = $%d`, len(args))
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		where += fmt.Sprintf(` AND (customer_name ILIKE $%d OR number ILIKE $%d)`, len(args), len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bills`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("billing: count bills: %w", err)
	}

	query := `SELECT ` + billColumns + ` FROM bills` + where + ` ORDER BY created_at DESC`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
		offset := (filters.Page - 1) * filters.Limit
		if offset < 0 {
			offset = 0
		}
		args = append(args, offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("billing: list bills: %w", err)
	}
	defer rows.Close()

	var bills []Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		bills = append(bills, *bill)
	}
	return bills, total, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("billing: delete bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bill %s", httpx.ErrNotFound, id)
	}
	return nil
}

func (r *repository) NextNumber(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('bill_number_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("billing: next bill number: %w", err)
	}
	return seq, nil
}

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.Number, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &b.CustomerAddress, &b.Currency, &b.Subtotal,
		&b.MakingCharges, &b.GST, &b.VAT, &b.Discount, &b.Total,
		&b.PaidAmount, &b.PaymentMethod, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
